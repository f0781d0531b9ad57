package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidFilename is returned when a filename would resolve outside the
// storage directory. Sanitization should make this unreachable for uploads;
// the check remains as defense in depth and guards the download path.
var ErrInvalidFilename = errors.New("invalid filename")

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	dotRuns     = regexp.MustCompile(`\.{2,}`)
)

// FileInfo describes one stored file as reported by the listing endpoint.
type FileInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size string `json:"size"`
	Time string `json:"time"`
}

// In-flight uploads are written under this prefix and renamed into place
// once complete; the listing ignores them.
const tempPrefix = ".upload-"

type Storage struct {
	basePath string
}

func NewStorage(basePath string) *Storage {
	return &Storage{basePath: basePath}
}

// sanitizeFilename maps a client-supplied name to a single safe path segment:
// every byte outside [A-Za-z0-9._-] becomes an underscore, and runs of two or
// more dots collapse to one underscore so no ".." segment survives.
func sanitizeFilename(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	return dotRuns.ReplaceAllString(name, "_")
}

// splitExt splits a name into base and extension at the last dot. Names that
// are all extension (".bashrc") count as having no extension.
func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		return name, ""
	}
	return base, ext
}

// SafeName derives the stored filename: sanitized base, a second-resolution
// timestamp suffix, and the original extension when present.
func (s *Storage) SafeName(original string, now time.Time) string {
	base, ext := splitExt(sanitizeFilename(original))
	if base == "" {
		base = "upload"
	}
	return base + "_" + now.Format("20060102_150405") + ext
}

// resolve joins name with the storage root and verifies the result stays
// inside it.
func (s *Storage) resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidFilename
	}
	path := filepath.Join(s.basePath, name)
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel != name {
		return "", ErrInvalidFilename
	}
	return path, nil
}

// Save writes the payload under a fresh name derived from original and
// returns the final absolute path and byte count. The payload lands in a
// temp file first and is renamed into place, so a failed upload never leaves
// a partial file under its final name.
func (s *Storage) Save(original string, reader io.Reader) (string, int64, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", 0, fmt.Errorf("create storage directory: %w", err)
	}

	name := s.SafeName(original, time.Now())
	target, err := s.resolve(name)
	if err != nil {
		return "", 0, err
	}

	tempFile, err := os.CreateTemp(s.basePath, tempPrefix+"*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	written, err := io.Copy(tempFile, reader)
	if err != nil {
		tempFile.Close()
		return "", 0, fmt.Errorf("write upload: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return "", 0, fmt.Errorf("write upload: %w", err)
	}

	// Timestamps only resolve to the second; if the name is taken, retry
	// with a short random token before the extension.
	if _, err := os.Stat(target); err == nil {
		base, ext := splitExt(name)
		name = base + "_" + uuid.NewString()[:8] + ext
		if target, err = s.resolve(name); err != nil {
			return "", 0, err
		}
	}

	if err := os.Rename(tempFile.Name(), target); err != nil {
		return "", 0, fmt.Errorf("store upload: %w", err)
	}

	return target, written, nil
}

// List enumerates regular files in the storage directory, newest first. A
// missing directory yields an empty listing.
func (s *Storage) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, fmt.Errorf("read storage directory: %w", err)
	}

	type statEntry struct {
		name    string
		size    int64
		modTime time.Time
	}

	stats := make([]statEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		stats = append(stats, statEntry{entry.Name(), info.Size(), info.ModTime()})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].modTime.After(stats[j].modTime)
	})

	files := make([]FileInfo, 0, len(stats))
	for _, st := range stats {
		files = append(files, FileInfo{
			Name: st.name,
			Path: filepath.Join(s.basePath, st.name),
			Size: formatSize(st.size),
			Time: st.modTime.Format("2006-01-02 15:04:05"),
		})
	}
	return files, nil
}

// formatSize renders a byte count as bytes, kibibytes, or mebibytes with one
// decimal place.
func formatSize(bytes int64) string {
	const unit = 1024
	switch {
	case bytes < unit:
		return strconv.FormatInt(bytes, 10) + " B"
	case bytes < unit*unit:
		return strconv.FormatFloat(float64(bytes)/unit, 'f', 1, 64) + " KB"
	default:
		return strconv.FormatFloat(float64(bytes)/(unit*unit), 'f', 1, 64) + " MB"
	}
}
