package canvas

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic writes an output artifact through a temporary file in the
// destination directory and renames it into place once write succeeds.
// On any failure the temporary file is removed and an ErrWrite error is
// returned; an existing file at path is left untouched.
func WriteAtomic(op, path string, write func(io.Writer) error) error {
	fail := func(err error) error {
		return &Error{Kind: ErrWrite, Op: op, Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fail(err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		cleanup()
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		cleanup()
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fail(err)
	}
	return nil
}
