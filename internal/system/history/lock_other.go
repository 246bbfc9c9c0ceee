// Released under an MIT license. See LICENSE.

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package history

import "os"

func lock(_ *os.File) error {
	return nil
}

func unlock(_ *os.File) error {
	return nil
}
