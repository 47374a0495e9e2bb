// Package linefile reads and writes the plain text message files: one message
// per line, an empty line for an empty message.
package linefile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Lines longer than this are rejected by Load.
const maxLineLength = 1 << 20

var (
	ErrNoMessages = errors.New("no messages found")
	ErrFileExists = errors.New("file already exists")
)

// Normalize drops bytes that can never start or continue valid UTF-8
// (0xC0, 0xC1, 0xF5-0xFF) and uppercases ASCII letters. Other bytes are kept
// as is; no Unicode case mapping is attempted.
func Normalize(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := range len(line) {
		c := line[i]
		switch {
		case c == 0xC0 || c == 0xC1 || c >= 0xF5:
			continue
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Load reads every line of the file, normalized. A trailing carriage return
// is stripped from each line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		lines = append(lines, Normalize(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w in file %s", ErrNoMessages, path)
	}
	return lines, nil
}

// Save writes one line per message. The write goes to a temp file in the
// same directory that is then renamed over path, so readers never see a
// partial file. An existing file is only replaced when overwrite is set, and
// keeps its permissions.
func Save(path string, lines []string, overwrite bool) error {
	if len(lines) == 0 {
		return ErrNoMessages
	}
	path = filepath.Clean(path)

	existing, err := os.Stat(path)
	switch {
	case err == nil:
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		if existing.IsDir() {
			return fmt.Errorf("cannot save to directory %s", path)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
		return fmt.Errorf("failed to ensure directory for file %s: %w", path, err)
	}

	tmpName := fmt.Sprintf("%s.tmp-%d", path, time.Now().UnixNano())
	tmpFile, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("failed to open file %s for save: %w", path, err)
	}
	if err := writeLines(tmpFile, lines); err != nil {
		tmpFile.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	if existing != nil {
		_ = os.Chmod(tmpName, existing.Mode().Perm())
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func writeLines(f *os.File, lines []string) error {
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
