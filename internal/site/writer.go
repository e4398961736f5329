// Package site persists generated documents to the output directory.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	separatorsRe = regexp.MustCompile(`[\s-]+`)
)

// Slugify turns a business name into a filesystem-safe ASCII slug: non-word
// characters stripped, runs of spaces and hyphens collapsed into one hyphen,
// leading and trailing hyphens dropped, lowercased.
func Slugify(name string) string {
	s := nonWordRe.ReplaceAllString(name, "")
	s = separatorsRe.ReplaceAllString(strings.TrimSpace(s), "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// Filename derives the output filename for a business name.
func Filename(businessName string) string {
	return Slugify(businessName) + "-website.html"
}

// Writer stores rendered documents under a single output directory.
type Writer struct {
	dir    string
	logger *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Dir returns the output directory path.
func (w *Writer) Dir() string {
	return w.dir
}

// Save writes the document in a single full write and returns the filename.
// The output directory is created on demand.
func (w *Writer) Save(businessName, html string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := Filename(businessName)
	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	w.logger.Info("site saved",
		zap.String("filename", filename),
		zap.Int("bytes", len(html)))
	return filename, nil
}

// Path resolves a previously saved filename inside the output directory.
// The base-name restriction keeps lookups from escaping the directory.
func (w *Writer) Path(filename string) (string, error) {
	base := filepath.Base(filename)
	if base != filename || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename: %s", filename)
	}
	path := filepath.Join(w.dir, base)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("site file %s: %w", base, err)
	}
	return path, nil
}
