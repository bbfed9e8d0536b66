package sizeguard

import (
	"os"
	"path/filepath"
)

// LockedFile is file with an exclusive lock for other processes.
type LockedFile struct {
	fname  string
	file   *os.File
	locked bool
}

// NewLockedFile creates a new LockedFile.
func NewLockedFile(fname string) *LockedFile {
	return &LockedFile{fname: fname}
}

// Filename returns file's name.
func (f *LockedFile) Filename() string {
	return f.fname
}

// Open opens a file and waits until the lock is acquired.
func (f *LockedFile) Open(flag int, perm os.FileMode) (err error) {
	if flag&os.O_CREATE == os.O_CREATE {
		if err = EnsurePath(filepath.Dir(f.fname)); err != nil {
			return err
		}
	}
	f.file, err = os.OpenFile(f.fname, flag, perm) //nolint:gosec
	if err != nil {
		return err
	}
	if err = f.lock(true); err != nil {
		_ = f.file.Close()
		f.file = nil
		return err
	}
	return nil
}

// Close implements [io.Closer] interface.
func (f *LockedFile) Close() error {
	if f.file == nil {
		return nil
	}
	f.unlock()
	err := f.file.Close()
	f.file = nil
	return err
}
