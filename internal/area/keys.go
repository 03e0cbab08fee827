package area

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// fieldSet lists a struct's JSON keys and which of them may be null.
type fieldSet struct {
	known    map[string]bool
	nullable map[string]bool
}

var (
	areaFields      = fieldsOf(reflect.TypeOf(Area{}))
	candidateFields = fieldsOf(reflect.TypeOf(Candidate{}))
)

func fieldsOf(t reflect.Type) fieldSet {
	fs := fieldSet{known: map[string]bool{}, nullable: map[string]bool{}}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fs.known[name] = true
		if f.Type.Kind() == reflect.Pointer {
			fs.nullable[name] = true
		}
	}
	return fs
}

// exactKeys re-encodes a JSON object keeping only keys that match a field
// name exactly. encoding/json would otherwise fold "Year" onto "year".
// Null is accepted only for pointer fields.
func exactKeys(data []byte, fs fieldSet, what string) ([]byte, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%s: null is not an object", what)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	for k, v := range obj {
		if !fs.known[k] {
			delete(obj, k)
			continue
		}
		if !fs.nullable[k] && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, fmt.Errorf("%s.%s: null is not allowed", what, k)
		}
	}
	return json.Marshal(obj)
}

func (a *Area) UnmarshalJSON(data []byte) error {
	type plain Area
	clean, err := exactKeys(data, areaFields, "area")
	if err != nil {
		return err
	}
	return json.Unmarshal(clean, (*plain)(a))
}

func (c *Candidate) UnmarshalJSON(data []byte) error {
	type plain Candidate
	clean, err := exactKeys(data, candidateFields, "candidate")
	if err != nil {
		return err
	}
	return json.Unmarshal(clean, (*plain)(c))
}
