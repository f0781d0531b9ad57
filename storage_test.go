package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeName(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	s := NewStorage(t.TempDir())

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"simple", "report.pdf", "report_20240115_103000.pdf"},
		{"no extension", "README", "README_20240115_103000"},
		{"double extension", "archive.tar.gz", "archive.tar_20240115_103000.gz"},
		{"spaces and parens", "my file (1).txt", "my_file__1__20240115_103000.txt"},
		{"path traversal", "../../etc/passwd", "____etc_passwd_20240115_103000"},
		{"backslashes", `..\..\boot.ini`, "____boot_20240115_103000.ini"},
		{"dotfile", ".bashrc", ".bashrc_20240115_103000"},
		{"empty", "", "upload_20240115_103000"},
		{"unicode", "日本語.txt", "____20240115_103000.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SafeName(tt.original, now)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, `\`)
			assert.NotContains(t, got, "..")
		})
	}
}

func TestResolveRejectsEscape(t *testing.T) {
	s := NewStorage(t.TempDir())

	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "../escape", "sub/../../x"} {
		_, err := s.resolve(name)
		require.ErrorIs(t, err, ErrInvalidFilename, "name %q must be rejected", name)
	}

	path, err := s.resolve("ok.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.basePath, "ok.txt"), path)
}

func TestSaveAndList(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)
	content := []byte("hello, drop zone")

	path, size, err := s.Save("notes.txt", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "notes_"))
	assert.True(t, strings.HasSuffix(path, ".txt"))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Base(path), files[0].Name)
	assert.Equal(t, path, files[0].Path)
	assert.Equal(t, "16 B", files[0].Size)
}

func TestSaveZeroByte(t *testing.T) {
	s := NewStorage(t.TempDir())

	path, size, err := s.Save("empty.bin", bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Zero(t, size)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "0 B", files[0].Size)
}

func TestSaveSameNameTwice(t *testing.T) {
	s := NewStorage(t.TempDir())

	first, _, err := s.Save("dup.txt", strings.NewReader("one"))
	require.NoError(t, err)
	second, _, err := s.Save("dup.txt", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	files, err := s.List()
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "share")
	s := NewStorage(dir)

	path, _, err := s.Save("a.txt", strings.NewReader("x"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	_, _, err := s.Save("a.txt", strings.NewReader("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".upload-"),
			"temp file %s left behind", entry.Name())
	}
}

// brokenReader yields one chunk of data, then fails, like a client hanging
// up mid-upload.
type brokenReader struct {
	data []byte
	done bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("connection reset")
}

func TestSaveAbortedUploadLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	_, _, err := s.Save("broken.txt", &brokenReader{data: []byte("partial payload")})
	require.Error(t, err)

	// Neither a file under its final name nor a leftover temp file
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// The storage path's parent is a regular file, so MkdirAll must fail
	s := NewStorage(filepath.Join(blocker, "share"))

	_, _, err := s.Save("a.txt", strings.NewReader("payload"))
	require.Error(t, err)
}

func TestListMissingDirectory(t *testing.T) {
	s := NewStorage(filepath.Join(t.TempDir(), "does-not-exist"))

	files, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NotNil(t, files)
}

func TestListSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.txt"), []byte("x"), 0644))

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "plain.txt", files[0].Name)
}

func TestListSkipsInFlightTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, tempPrefix+"123456"), []byte("partial"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "done.txt"), []byte("x"), 0644))

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "done.txt", files[0].Name)
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	older := filepath.Join(dir, "older.txt")
	newer := filepath.Join(dir, "newer.txt")
	require.NoError(t, os.WriteFile(older, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(newer, []byte("b"), 0644))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "newer.txt", files[0].Name)
	assert.Equal(t, "older.txt", files[1].Name)
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024*1024 - 1, "1024.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{1572864, "1.5 MB"},
		{3 * 1024 * 1024 * 1024, "3072.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSize(tt.bytes), "formatSize(%d)", tt.bytes)
	}
}
