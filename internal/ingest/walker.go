package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RootDir is the directory, relative to the election directory, that holds
// one subdirectory per constituency grouping.
const RootDir = "constituencies"

var (
	ErrNoConstituencies = errors.New("missing '" + RootDir + "' sub-directory")
	ErrNothingToCreate  = errors.New("nothing to create")
)

// Subdir is one child of the constituencies directory and the files found
// directly inside it.
type Subdir struct {
	Name  string
	Path  string
	Files []string
}

// Walk lists root's immediate subdirectories and the regular files in each.
// Results are sorted by name at both levels. Nested directories and any
// files sitting directly in root are ignored.
func Walk(root string) ([]Subdir, error) {
	fi, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConstituencies, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoConstituencies, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", root, err)
	}

	var out []Subdir
	total := 0
	for _, e := range entries {
		p := filepath.Join(root, e.Name())
		isDir, err := followIsDir(p, e)
		if err != nil {
			return nil, err
		}
		if !isDir {
			continue
		}
		files, err := listFiles(p)
		if err != nil {
			return nil, err
		}
		total += len(files)
		out = append(out, Subdir{Name: e.Name(), Path: p, Files: files})
	}
	if total == 0 {
		return nil, ErrNothingToCreate
	}
	return out, nil
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		regular, err := followIsRegular(p, e)
		if err != nil {
			return nil, err
		}
		if regular {
			files = append(files, p)
		}
	}
	return files, nil
}

// Symlinks are resolved with Stat; a dangling link is neither a file nor a
// directory.
func followIsDir(p string, e os.DirEntry) (bool, error) {
	if e.Type()&os.ModeSymlink == 0 {
		return e.IsDir(), nil
	}
	fi, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	return fi.IsDir(), nil
}

func followIsRegular(p string, e os.DirEntry) (bool, error) {
	if e.Type()&os.ModeSymlink == 0 {
		return e.Type().IsRegular(), nil
	}
	fi, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	return fi.Mode().IsRegular(), nil
}
