package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileStore persists records as pretty-printed JSON files in a single directory.
type FileStore struct {
	dir    string
	out    io.Writer
	logger zerolog.Logger
	create func(root *os.Root, name string) (io.WriteCloser, error)
}

// NewFileStore creates a FileStore writing files into dir and rendering to out.
func NewFileStore(dir string, out io.Writer, logger zerolog.Logger) *FileStore {
	if dir == "" {
		dir = "."
	}
	if out == nil {
		out = os.Stdout
	}
	return &FileStore{dir: dir, out: out, logger: logger, create: createExclusive}
}

// createExclusive creates name inside root, failing if it already exists.
func createExclusive(root *os.Root, name string) (io.WriteCloser, error) {
	f, err := root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Dir returns the directory records are persisted into.
func (s *FileStore) Dir() string {
	return s.dir
}

// Persist writes rec to a new file named by FileName and returns its path.
// It never overwrites: an existing file with the same name yields ErrFileExists.
// Names are not sanitized, but one that resolves outside the store directory
// fails as ErrFileSystem.
// A failure while writing to the freshly created file is only logged.
func (s *FileStore) Persist(rec Record) (string, error) {
	data, err := encodeRecord(rec)
	if err != nil {
		return "", err
	}
	name := FileName(rec)
	path := filepath.Join(s.dir, name)

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrFileSystem, s.dir, err)
	}
	defer root.Close()

	file, err := s.create(root, name)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return "", fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	if _, err := file.Write(append(data, '\n')); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("could not write record file")
	}
	if err := file.Close(); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("could not close record file")
	}
	s.logger.Debug().Str("kind", string(rec.Kind())).Str("path", path).Msg("record persisted")
	return path, nil
}

// Render prints rec as pretty-printed JSON to the store's console writer.
func (s *FileStore) Render(rec Record) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("render %s: %w", rec.Kind(), err)
	}
	return nil
}

func encodeRecord(rec Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}
