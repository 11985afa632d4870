package topology

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// DefaultFile is the topology file name used when none is configured.
const DefaultFile = "topologia.txt"

// Sample returns the bootstrap topology: 5 links among routers A, B, C and D.
func Sample() []Link {
	return []Link{
		{A: "A", B: "B", Cost: 5},
		{A: "A", B: "C", Cost: 10},
		{A: "B", B: "C", Cost: 2},
		{A: "B", B: "D", Cost: 3},
		{A: "C", B: "D", Cost: 1},
	}
}

// EnsureFile writes Sample() to path unless a file already exists there.
// It reports whether the file was created.
func EnsureFile(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("topology: stat %s: %w", path, err)
	}

	if err := WriteFile(fsys, path, Sample()); err != nil {
		return false, err
	}

	return true, nil
}

// WriteFile creates or truncates path and writes links to it.
func WriteFile(fsys afero.Fs, path string, links []Link) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("topology: create %s: %w", path, err)
	}
	if err := Write(f, links); err != nil {
		_ = f.Close()
		return fmt.Errorf("topology: write %s: %w", path, err)
	}

	return f.Close()
}

// ReadFile opens path and parses it.
func ReadFile(fsys afero.Fs, path string) (*Result, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topology: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
