//go:build windows

package sizeguard

import (
	"golang.org/x/sys/windows"
)

const (
	allBytes = ^uint32(0)
)

func (f *LockedFile) lock(waitToAcquire bool) (err error) {
	if f.locked {
		panic("can't lock already opened file")
	}
	lt := windows.LOCKFILE_EXCLUSIVE_LOCK
	if !waitToAcquire {
		lt = lt | windows.LOCKFILE_FAIL_IMMEDIATELY
	}
	ol := new(windows.Overlapped)
	err = windows.LockFileEx(windows.Handle(f.file.Fd()), uint32(lt), 0, allBytes, allBytes, ol)
	if err != nil {
		return err
	}
	f.locked = true
	return nil
}

func (f *LockedFile) unlock() {
	if !f.locked {
		return
	}
	ol := new(windows.Overlapped)
	if err := windows.UnlockFileEx(windows.Handle(f.file.Fd()), 0, allBytes, allBytes, ol); err != nil {
		Log().Warn("unlock is called on a not locked file", "file", f.fname, "error", err)
	}
	f.locked = false
}
