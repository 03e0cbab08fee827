// Package election resolves which election a working directory holds and
// which database its results are loaded into.
package election

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

var ErrUnsupportedKind = errors.New("unsupported election type")

type Kind int

const (
	Assembly Kind = iota + 1
	Dail
	Westminster
)

var kindNames = map[Kind]string{
	Assembly:    "assembly",
	Dail:        "dail",
	Westminster: "westminster",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind matches a directory name against the known election kinds.
// Matching is exact and case-sensitive.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}

// Database is the resolved load target: which election and which database.
type Database struct {
	Kind Kind
	Name string
}

// Resolve derives the target from the working directory. The kind comes from
// the directory's base name; see DatabaseName for the name rules.
func Resolve(dir, explicit string, now time.Time) (Database, error) {
	k, err := ParseKind(filepath.Base(filepath.Clean(dir)))
	if err != nil {
		return Database{}, err
	}
	return Database{Kind: k, Name: DatabaseName(k, explicit, now)}, nil
}

// DatabaseName returns explicit unchanged when set, otherwise
// "<kind>_<MiniHash(now)>".
func DatabaseName(k Kind, explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	return k.String() + "_" + MiniHash(now)
}

// MiniHash is the first five hex digits of the SHA-1 of now's Unix seconds.
// Two runs within the same second collide.
func MiniHash(now time.Time) string {
	sum := sha1.Sum([]byte(strconv.FormatInt(now.Unix(), 10)))
	return hex.EncodeToString(sum[:])[:5]
}
