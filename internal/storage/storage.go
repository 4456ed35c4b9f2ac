package storage

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

type Status int

const (
	Found Status = iota
	NotFound
	Failed
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type Result struct {
	Status Status
	Data   []byte
	Err    error
}

// Storage retrieves whole files by slash-separated relative name.
type Storage interface {
	Lookup(name string) Result
}

type storage struct {
	fsys fs.FS
}

func New(fsys fs.FS) Storage {
	return &storage{fsys: fsys}
}

// NewDir serves files below root on the local filesystem.
func NewDir(root string) Storage {
	return New(os.DirFS(root))
}

// Lookup reads name in full. Missing files, directories, invalid names and
// files that cannot be opened report NotFound; a failure after the file was
// opened reports Failed.
func (s *storage) Lookup(name string) Result {
	if !fs.ValidPath(name) {
		return Result{Status: NotFound, Err: &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}}
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		return Result{Status: NotFound, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close %s: %v", name, err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return Result{Status: Failed, Err: fmt.Errorf("stat %s: %w", name, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Status: NotFound, Err: &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return Result{Status: Failed, Err: fmt.Errorf("read %s: %w", name, err)}
	}

	return Result{Status: Found, Data: data}
}
