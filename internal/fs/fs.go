// Package fs provides a file system abstraction for testing.
// This allows the scaffold pipeline to be unit tested without
// touching the real file system.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// FS defines the interface for file system operations.
// Implementations can provide real file system access or in-memory
// mocking for testing.
type FS interface {
	// ReadFile reads the entire file at path and returns its contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the file at path with the given permissions.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates all directories in the path.
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info for the given path.
	Stat(path string) (os.FileInfo, error)

	// Rename renames oldpath to newpath.
	Rename(oldpath, newpath string) error

	// ReadDir returns the sorted names of the entries in the directory.
	ReadDir(path string) ([]string, error)
}

// RealFS implements FS using the actual operating system.
type RealFS struct{}

func (r *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (r *RealFS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Default is the default RealFS instance for convenience.
var Default = &RealFS{}

// Exists reports whether anything exists at path.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// CopyTree copies every file below root in src into dst, creating dst.
// File contents are copied byte for byte.
func CopyTree(src iofs.FS, root string, dst FS, dstDir string) error {
	if _, err := iofs.Stat(src, root); err != nil {
		return fmt.Errorf("template root %s: %w", root, err)
	}

	if err := dst.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dstDir, err)
	}

	return iofs.WalkDir(src, root, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := relSlash(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dstDir, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := dst.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", rel, err)
			}
			return nil
		}

		data, err := iofs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		if err := dst.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
		return nil
	})
}

func relSlash(root, p string) (string, error) {
	root = path.Clean(root)
	p = path.Clean(p)
	if root == "." {
		return p, nil
	}
	if p == root {
		return ".", nil
	}
	if len(p) > len(root) && p[:len(root)] == root && p[len(root)] == '/' {
		return p[len(root)+1:], nil
	}
	return "", errors.New("path " + p + " is outside " + root)
}
