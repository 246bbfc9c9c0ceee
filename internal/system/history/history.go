// Released under an MIT license. See LICENSE.

// Package history persists interactive line history between sessions.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const basename = ".corelisp_history"

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	return use(f, func() error {
		_, err := read(f)

		return err
	})
}

// Save truncates the history file and passes it to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(func(p string) (*os.File, error) {
		return os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o600)
	})
	if err != nil {
		return err
	}

	return use(f, func() error {
		if err := f.Truncate(0); err != nil {
			return err
		}

		_, err := write(f)

		return err
	})
}

// Path returns the location of the history file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return filepath.Join(home, basename)
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}

// use runs fn while holding the lock on f and closes f afterwards.
func use(f *os.File, fn func() error) error {
	if err := lock(f); err != nil {
		f.Close()

		return err
	}

	err := fn()

	if uerr := unlock(f); err == nil {
		err = uerr
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
