// Package output writes rendered target files to a filesystem.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/subliminal-nightfall/colorloom/internal/targets"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// WriteError reports a directory or file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer writes target outputs beneath a root directory.
type Writer struct {
	fs     afero.Fs
	root   string
	logger zerolog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(w *Writer) {
		w.fs = fs
	}
}

// WithLogger sets the writer logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter creates a writer rooted at root.
func NewWriter(root string, opts ...Option) *Writer {
	w := &Writer{
		fs:     afero.NewOsFs(),
		root:   root,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write creates the output directory if needed and writes every file,
// returning the written paths. The first failure stops the write.
func (w *Writer) Write(out targets.Output) ([]string, error) {
	dir := filepath.Join(w.root, out.Dir)
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	written := make([]string, 0, len(out.Files))
	for _, f := range out.Files {
		path := filepath.Join(dir, f.Name)
		if err := afero.WriteFile(w.fs, path, f.Content, filePerm); err != nil {
			return written, &WriteError{Path: path, Err: err}
		}
		w.logger.Debug().Str("path", path).Int("bytes", len(f.Content)).Msg("wrote file")
		written = append(written, path)
	}

	w.logger.Info().
		Str("target", string(out.Target.Kind)).
		Str("path", dir).
		Int("files", len(written)).
		Msg("target written")
	return written, nil
}
