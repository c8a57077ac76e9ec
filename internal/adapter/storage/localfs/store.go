// Package localfs stores uploaded files on the local filesystem and exposes
// them under a URL prefix served by the HTTP layer.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// ErrInvalidName is returned for file names that are not a single path element.
var ErrInvalidName = errors.New("localfs: invalid file name")

// Store writes files into one directory.
type Store struct {
	dir       string
	urlPrefix string
}

// New creates a Store rooted at dir, creating the directory if needed.
// urlPrefix is the public path the directory is served under, e.g. "/uploads".
func New(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string { return s.dir }

// Save atomically writes data as name and returns its public URL.
func (s *Store) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	pending, err := renameio.NewPendingFile(filepath.Join(s.dir, name), renameio.WithPermissions(0o644))
	if err != nil {
		return "", fmt.Errorf("create pending file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("atomically replace %s: %w", name, err)
	}

	return path.Join(s.urlPrefix, name), nil
}

// Remove deletes the file behind a URL returned by Save. URLs outside the
// store's prefix and files that are already gone are ignored.
func (s *Store) Remove(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || !validName(name) {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
