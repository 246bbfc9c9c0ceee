// Released under an MIT license. See LICENSE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

func lock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
