//go:build unix

package sizeguard

import (
	"golang.org/x/sys/unix"
)

func (f *LockedFile) lock(waitToAcquire bool) (err error) {
	if f.locked {
		// If you get this error, there is racing between goroutines.
		panic("can't lock already opened file")
	}
	lockType := unix.LOCK_EX
	if !waitToAcquire {
		lockType = lockType | unix.LOCK_NB
	}
	if err = unix.Flock(int(f.file.Fd()), lockType); err != nil {
		return err
	}
	f.locked = true
	return nil
}

func (f *LockedFile) unlock() {
	if !f.locked {
		return
	}
	if err := unix.Flock(int(f.file.Fd()), unix.LOCK_UN); err != nil {
		Log().Warn("unlock is called on a not locked file", "file", f.fname, "error", err)
	}
	f.locked = false
}
