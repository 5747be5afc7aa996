// Package local implements the archive directory: uploaded audio, JSON
// snapshots and rendered PDFs live as flat files under one directory.
package local

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voxbill/internal/domain"
	"voxbill/internal/port"
)

type store struct {
	dir string
}

// NewStore creates a FileStore rooted at dir, creating the directory if needed.
func NewStore(dir string) (port.FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &store{dir: dir}, nil
}

func (s *store) Save(name string, data []byte) (string, error) {
	clean, err := s.safeName(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, clean), data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", clean, err)
	}
	return clean, nil
}

func (s *store) Open(name string) ([]byte, error) {
	p, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func (s *store) Exists(name string) bool {
	p, err := s.Path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

func (s *store) Path(name string) (string, error) {
	clean, err := s.safeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, clean), nil
}

// safeName rejects anything that could escape the archive directory.
func (s *store) safeName(name string) (string, error) {
	clean := filepath.Base(strings.TrimSpace(name))
	if clean == "" || clean == "." || clean == ".." || strings.ContainsAny(clean, "/\\") {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return clean, nil
}
