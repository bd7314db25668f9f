package invoice

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists the text of an invoice under a file name.
type Writer interface {
	Write(ctx context.Context, name string, lines []string) error
}

// FileWriter writes invoices as text files in a directory, overwriting any file of the same name.
type FileWriter struct {
	dir    string
	logger *slog.Logger
}

// NewFileWriter creates a writer that puts invoice files in dir.
func NewFileWriter(dir string, logger *slog.Logger) *FileWriter {
	return &FileWriter{dir: dir, logger: logger}
}

func (w *FileWriter) Write(ctx context.Context, name string, lines []string) error {
	path := filepath.Join(w.dir, name)

	if _, err := os.Stat(path); err == nil {
		w.logger.WarnContext(ctx, "overwriting existing invoice", slog.String("path", path))
	} else if !errors.Is(err, fs.ErrNotExist) {
		w.logger.DebugContext(ctx, "could not stat invoice path", slog.String("path", path), slog.Any("error", err))
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write invoice file: %w", err)
	}
	return nil
}
