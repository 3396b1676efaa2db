package file

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadSong returns the song text at path. A path of "-" reads stdin.
func ReadSong(path string) (string, error) {
	if path == "-" {
		return read(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "could not open song")
	}
	defer f.Close()
	return read(f, path)
}

func read(r io.Reader, name string) (string, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "could not read song from %s", name)
	}
	return string(dat), nil
}
