package fs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileInfo implements os.FileInfo for mock files.
type MockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (m *MockFileInfo) Name() string       { return m.name }
func (m *MockFileInfo) Size() int64        { return m.size }
func (m *MockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *MockFileInfo) ModTime() time.Time { return m.modTime }
func (m *MockFileInfo) IsDir() bool        { return m.isDir }
func (m *MockFileInfo) Sys() interface{}   { return nil }

// MockFS implements FS using an in-memory file system for testing.
// It also counts mutating calls so tests can assert that nothing was written.
type MockFS struct {
	mu     sync.RWMutex
	files  map[string][]byte
	perms  map[string]os.FileMode
	dirs   map[string]bool
	writes int
}

// NewMockFS creates a new MockFS with empty storage.
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string][]byte),
		perms: make(map[string]os.FileMode),
		dirs:  make(map[string]bool),
	}
}

// ReadFile reads the file at path from memory.
func (m *MockFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleanPath := filepath.Clean(path)
	data, ok := m.files[cleanPath]
	if !ok {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrNotExist}
	}
	// Return a copy to prevent external modification
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// WriteFile writes data to the file at path in memory.
func (m *MockFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := filepath.Clean(path)
	m.addParentsLocked(cleanPath)

	m.files[cleanPath] = make([]byte, len(data))
	copy(m.files[cleanPath], data)
	m.perms[cleanPath] = perm
	m.writes++

	return nil
}

// MkdirAll creates all directories in the path.
func (m *MockFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := filepath.Clean(path)
	if _, ok := m.files[cleanPath]; ok {
		return &os.PathError{Op: "mkdir", Path: path, Err: errors.New("not a directory")}
	}
	m.dirs[cleanPath] = true
	m.addParentsLocked(cleanPath)
	m.writes++

	return nil
}

// addParentsLocked marks every ancestor of p as a directory.
func (m *MockFS) addParentsLocked(p string) {
	dir := filepath.Dir(p)
	for dir != "." && dir != string(filepath.Separator) {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
	if filepath.IsAbs(p) {
		m.dirs[string(filepath.Separator)] = true
	}
}

// Stat returns file info for the given path.
func (m *MockFS) Stat(path string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleanPath := filepath.Clean(path)

	if data, ok := m.files[cleanPath]; ok {
		perm := m.perms[cleanPath]
		if perm == 0 {
			perm = 0644
		}
		return &MockFileInfo{
			name:    filepath.Base(cleanPath),
			size:    int64(len(data)),
			mode:    perm,
			modTime: time.Now(),
		}, nil
	}

	if m.dirs[cleanPath] || cleanPath == "." {
		return &MockFileInfo{
			name:    filepath.Base(cleanPath),
			mode:    0755 | os.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}, nil
	}

	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// Rename renames the file at oldpath to newpath.
func (m *MockFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanOld := filepath.Clean(oldpath)
	cleanNew := filepath.Clean(newpath)

	data, ok := m.files[cleanOld]
	if !ok {
		return &os.PathError{Op: "rename", Path: oldpath, Err: os.ErrNotExist}
	}
	if cleanOld == cleanNew {
		return nil
	}

	m.files[cleanNew] = data
	m.perms[cleanNew] = m.perms[cleanOld]
	delete(m.files, cleanOld)
	delete(m.perms, cleanOld)
	m.writes++

	return nil
}

// ReadDir returns the sorted names of the direct children of path.
func (m *MockFS) ReadDir(path string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleanPath := filepath.Clean(path)
	if !m.dirs[cleanPath] && cleanPath != "." {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}

	seen := make(map[string]bool)
	collect := func(p string) {
		if filepath.Dir(p) == cleanPath && p != cleanPath {
			seen[filepath.Base(p)] = true
		}
	}
	for p := range m.files {
		collect(p)
	}
	for p := range m.dirs {
		collect(p)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// AddFile adds a file with content to the mock FS for testing.
func (m *MockFS) AddFile(path string, content []byte, perm os.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cleanPath := filepath.Clean(path)
	m.addParentsLocked(cleanPath)
	m.files[cleanPath] = make([]byte, len(content))
	copy(m.files[cleanPath], content)
	m.perms[cleanPath] = perm
}

// AddDir adds a directory to the mock FS for testing.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cleanPath := filepath.Clean(path)
	m.addParentsLocked(cleanPath)
	m.dirs[cleanPath] = true
}

// FileExists checks if a file exists in the mock FS.
func (m *MockFS) FileExists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// DirExists checks if a directory exists in the mock FS.
func (m *MockFS) DirExists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[filepath.Clean(path)]
}

// Files returns the sorted paths of all files below prefix.
func (m *MockFS) Files(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix = filepath.Clean(prefix)
	var out []string
	for p := range m.files {
		if p == prefix || strings.HasPrefix(p, prefix+string(filepath.Separator)) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Writes returns the number of mutating calls made since creation.
// Files and directories seeded with AddFile/AddDir are not counted.
func (m *MockFS) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
