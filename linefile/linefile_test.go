package linefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "hello world", want: "HELLO WORLD"},
		{name: "mixed", input: "MiXeD 123!", want: "MIXED 123!"},
		{name: "empty", input: "", want: ""},
		{name: "invalid lead bytes dropped", input: "a\xC0b\xC1c", want: "ABC"},
		{name: "high bytes dropped", input: "x\xF5\xFAy\xFF", want: "XY"},
		{name: "other high bytes kept", input: "\xC3\xA9", want: "\xC3\xA9"},
		{name: "tilde and punctuation kept", input: "~a-b_c", want: "~A-B_C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr error
	}{
		{
			name:    "lines with blank",
			content: "hello\n\nworld\n",
			want:    []string{"HELLO", "", "WORLD"},
		},
		{
			name:    "no trailing newline",
			content: "one\ntwo",
			want:    []string{"ONE", "TWO"},
		},
		{
			name:    "crlf",
			content: "one\r\ntwo\r\n",
			want:    []string{"ONE", "TWO"},
		},
		{
			name:    "single blank line",
			content: "\n",
			want:    []string{""},
		},
		{
			name:    "empty file",
			content: "",
			wantErr: ErrNoMessages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	require.NoError(t, Save(path, []string{"QEXHOLJLB", "", "FE::A"}, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "QEXHOLJLB\n\nFE::A\n", string(raw))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"QEXHOLJLB", "", "FE::A"}, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestSaveRefusesOverwrite(t *testing.T) {
	path := writeFile(t, "keep\n")

	err := Save(path, []string{"replace"}, false)
	require.ErrorIs(t, err, ErrFileExists)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(raw))
}

func TestSaveOverwriteKeepsMode(t *testing.T) {
	path := writeFile(t, "old\n")
	require.NoError(t, os.Chmod(path, 0o640))

	require.NoError(t, Save(path, []string{"new"}, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(raw))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), st.Mode().Perm())
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()

	assert.ErrorIs(t, Save(filepath.Join(dir, "x.txt"), nil, true), ErrNoMessages)
	assert.Error(t, Save(dir, []string{"a"}, true), "saving over a directory must fail")
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		wantKind string
		wantErr  bool
	}{
		{name: "simple", kind: "encoded", wantKind: "encoded"},
		{name: "sanitized", kind: "decoded all!", wantKind: "decoded_all_"},
		{name: "hyphen kept", kind: "re-encoded", wantKind: "re-encoded"},
		{name: "truncated", kind: strings.Repeat("k", 40), wantKind: strings.Repeat("k", 32)},
		{name: "empty", kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewOutputName(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, got.ID+"_"+tt.wantKind+".txt", got.FileName)
			assert.WithinDuration(t, time.Now(), got.Time, time.Minute)

			parsed, err := ParseOutputName(filepath.Join("some", "dir", got.FileName))
			require.NoError(t, err)
			assert.Equal(t, got.ID, parsed.ID)
			assert.Equal(t, got.Kind, parsed.Kind)
			assert.True(t, got.Time.Equal(parsed.Time))
		})
	}
}

func TestOutputNamesAreUniqueAndOrdered(t *testing.T) {
	a, err := NewOutputName("encoded")
	require.NoError(t, err)
	b, err := NewOutputName("encoded")
	require.NoError(t, err)
	assert.NotEqual(t, a.FileName, b.FileName)
	assert.Less(t, a.ID, b.ID)
}

func TestParseOutputNameErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "wrong extension", filename: "018f1e3e-7c89-7b4b-8a3b-6f8e8f8e8f8e_encoded.json"},
		{name: "no kind", filename: "018f1e3e-7c89-7b4b-8a3b-6f8e8f8e8f8e.txt"},
		{name: "empty kind", filename: "018f1e3e-7c89-7b4b-8a3b-6f8e8f8e8f8e_.txt"},
		{name: "bad uuid", filename: "not-a-uuid_encoded.txt"},
		{name: "uuid v4", filename: "9b2c1f2e-4d3a-4c6b-8e1f-2a3b4c5d6e7f_encoded.txt"},
		{name: "default style name", filename: "default_00.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOutputName(tt.filename)
			assert.Error(t, err)
		})
	}
}
