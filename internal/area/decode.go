package area

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNotObject = errors.New("area: top-level JSON value is not an object")

// Decode reads one JSON object from r. Missing fields keep their zero
// value; a present field of the wrong type (or out of range) is an error.
func Decode(r io.Reader) (Area, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Area{}, err
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Area{}, ErrNotObject
	}

	var a Area
	if err := json.Unmarshal(data, &a); err != nil {
		return Area{}, err
	}
	a.fillDefaults()
	return a, nil
}

// LoadFile opens path and decodes it. Errors carry the path.
func LoadFile(path string) (Area, error) {
	f, err := os.Open(path)
	if err != nil {
		return Area{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return Area{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return a, nil
}
