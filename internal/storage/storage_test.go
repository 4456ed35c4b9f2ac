package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faultyFile struct {
	info    fs.FileInfo
	statErr error
	readErr error
	closed  int
}

func (f *faultyFile) Stat() (fs.FileInfo, error) { return f.info, f.statErr }
func (f *faultyFile) Read([]byte) (int, error)   { return 0, f.readErr }
func (f *faultyFile) Close() error {
	f.closed++
	return nil
}

type fileInfo struct {
	name string
	mode fs.FileMode
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return 0 }
func (fi fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fileInfo) Sys() any           { return nil }

type faultyFS struct {
	file    *faultyFile
	openErr error
}

func (f *faultyFS) Open(name string) (fs.File, error) {
	if f.openErr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: f.openErr}
	}
	return f.file, nil
}

func TestLookup_MapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"HelloWorld.html": {Data: []byte("<h1>Hello</h1>")},
		"empty.txt":       {Data: []byte{}},
		"css/site.css":    {Data: []byte("body{}")},
	}
	store := New(fsys)

	tests := []struct {
		name   string
		path   string
		status Status
		data   []byte
	}{
		{"existing file", "HelloWorld.html", Found, []byte("<h1>Hello</h1>")},
		{"nested file", "css/site.css", Found, []byte("body{}")},
		{"empty file", "empty.txt", Found, []byte{}},
		{"missing file", "missing.txt", NotFound, nil},
		{"directory", "css", NotFound, nil},
		{"root directory", ".", NotFound, nil},
		{"invalid name", "../HelloWorld.html", NotFound, nil},
		{"absolute name", "/HelloWorld.html", NotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := store.Lookup(tt.path)
			assert.Equal(t, tt.status, res.Status)
			if tt.status == Found {
				assert.NoError(t, res.Err)
				assert.Equal(t, tt.data, res.Data)
			} else {
				assert.Error(t, res.Err)
				assert.Nil(t, res.Data)
			}
		})
	}
}

func TestLookup_OpenErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not exist", fs.ErrNotExist},
		{"permission denied", fs.ErrPermission},
		{"other open failure", errors.New("too many open files")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New(&faultyFS{openErr: tt.err}).Lookup("a.txt")
			assert.Equal(t, NotFound, res.Status)
			assert.ErrorIs(t, res.Err, tt.err)
		})
	}
}

func TestLookup_ReadFailureClosesFile(t *testing.T) {
	readErr := errors.New("input/output error")
	file := &faultyFile{
		info:    fileInfo{name: "a.txt"},
		readErr: readErr,
	}

	res := New(&faultyFS{file: file}).Lookup("a.txt")
	assert.Equal(t, Failed, res.Status)
	assert.ErrorIs(t, res.Err, readErr)
	assert.Equal(t, 1, file.closed)
}

func TestLookup_StatFailure(t *testing.T) {
	statErr := errors.New("stale handle")
	file := &faultyFile{statErr: statErr}

	res := New(&faultyFS{file: file}).Lookup("a.txt")
	assert.Equal(t, Failed, res.Status)
	assert.ErrorIs(t, res.Err, statErr)
	assert.Equal(t, 1, file.closed)
}

func TestLookup_DirectoryClosesFile(t *testing.T) {
	file := &faultyFile{info: fileInfo{name: "dir", mode: fs.ModeDir}}

	res := New(&faultyFS{file: file}).Lookup("dir")
	assert.Equal(t, NotFound, res.Status)
	assert.ErrorIs(t, res.Err, fs.ErrNotExist)
	assert.Equal(t, 1, file.closed)
}

func TestNewDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("hello"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(root), "outside.txt"), []byte("secret"), 0644))

	store := NewDir(root)

	res := store.Lookup("index.html")
	assert.Equal(t, Found, res.Status)
	assert.Equal(t, []byte("hello"), res.Data)

	assert.Equal(t, NotFound, store.Lookup("sub").Status)
	assert.Equal(t, NotFound, store.Lookup("nope.html").Status)
	assert.Equal(t, NotFound, store.Lookup("../outside.txt").Status)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "not found", NotFound.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
