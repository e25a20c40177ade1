package app

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"
)

type mockFS struct {
	files      map[string][]byte
	existsErr  map[string]error
	copyErr    map[string]error
	statErr    map[string]error
	readDirErr error
	copies     []string
}

func newMockFS(files map[string][]byte) *mockFS {
	if files == nil {
		files = map[string][]byte{}
	}
	return &mockFS{
		files:     files,
		existsErr: map[string]error{},
		copyErr:   map[string]error{},
		statErr:   map[string]error{},
	}
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	if err := m.statErr[path]; err != nil {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
}

func (m *mockFS) Exists(path string) (bool, error) {
	if err := m.existsErr[path]; err != nil {
		return false, err
	}
	_, ok := m.files[path]
	return ok, nil
}

func (m *mockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.readDirErr != nil {
		return nil, m.readDirErr
	}
	var entries []fs.DirEntry
	for p := range m.files {
		if filepath.Dir(p) == path {
			entries = append(entries, mockDirEntry{name: filepath.Base(p)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if err := m.copyErr[dst]; err != nil {
		return err
	}
	m.files[dst] = append([]byte(nil), m.files[src]...)
	m.copies = append(m.copies, dst)
	return nil
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name string
	size int64
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return m.size }
func (m mockFileInfo) Mode() fs.FileMode  { return 0o644 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() interface{}   { return nil }
