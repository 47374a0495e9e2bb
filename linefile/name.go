package linefile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	outputExtension = "txt"
	maxKindLength   = 32
)

var nonAlphaNum = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// OutputName is a generated file name "<uuidv7>_<kind>.txt". The UUIDv7
// makes names unique and sortable by creation time.
type OutputName struct {
	ID       string
	Kind     string
	FileName string
	Time     time.Time
}

// NewOutputName builds a fresh name for a file of the given kind, such as
// "encoded" or "decoded".
// Note: Kind is lossy- characters other than letters, digits and hyphens
// become underscores and it is cut to 32 characters.
func NewOutputName(kind string) (OutputName, error) {
	if kind == "" {
		return OutputName{}, fmt.Errorf("invalid request. kind: %q", kind)
	}
	u, err := uuid.NewV7()
	if err != nil {
		return OutputName{}, fmt.Errorf("failed to generate UUIDv7: %w", err)
	}

	if len(kind) > maxKindLength {
		kind = kind[:maxKindLength]
	}
	kind = nonAlphaNum.ReplaceAllString(kind, "_")
	id := u.String()
	return OutputName{
		ID:       id,
		Kind:     kind,
		FileName: fmt.Sprintf("%s_%s.%s", id, kind, outputExtension),
		Time:     uuidTime(u),
	}, nil
}

// ParseOutputName extracts the id, kind and creation time from a name
// produced by NewOutputName. Directories in filename are ignored.
func ParseOutputName(filename string) (OutputName, error) {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext != "."+outputExtension {
		return OutputName{}, fmt.Errorf("invalid file name: %s", filename)
	}
	base = strings.TrimSuffix(base, ext)

	id, kind, ok := strings.Cut(base, "_")
	if !ok || kind == "" {
		return OutputName{}, fmt.Errorf("invalid file name: %s", filename)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return OutputName{}, fmt.Errorf("invalid ID: %s err: %w", id, err)
	}
	if u.Version() != 7 {
		return OutputName{}, fmt.Errorf("UUID %q is version %d, want 7", id, u.Version())
	}

	return OutputName{
		ID:       id,
		Kind:     kind,
		FileName: filename,
		Time:     uuidTime(u),
	}, nil
}

func uuidTime(u uuid.UUID) time.Time {
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}
