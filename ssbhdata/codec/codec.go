// Package codec reads and writes native data graphs in the JSON/YAML
// interchange format. JSON output is canonical (RFC 8785), YAML output is the
// sigs.k8s.io/yaml rendering of the same JSON document.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"sigs.k8s.io/yaml"
)

// FormatEnum is an interchange file format.
type FormatEnum int

const (
	FormatUnknown FormatEnum = iota
	FormatJSON
	FormatYAML
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

const filePerm = 0o644

// FormatOf selects the format from the file extension.
func FormatOf(path string) FormatEnum {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Decode parses data into out. Unknown fields are rejected.
func Decode(data []byte, out any) error {
	if err := yaml.UnmarshalStrict(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// Encode renders in as canonical JSON or YAML. Nil slices and maps are
// written as empty ones.
func Encode(in any, format FormatEnum) ([]byte, error) {
	if in != nil {
		in = withEmpty(reflect.ValueOf(in)).Interface()
	}

	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	switch format {
	case FormatJSON:
		data, err = jsoncanonicalizer.Transform(data)
		if err != nil {
			return nil, fmt.Errorf("canonicalize: %w", err)
		}

		return data, nil

	case FormatYAML:
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return data, nil

	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadFile parses the file at path into out.
func ReadFile(path string, out any) error {
	if FormatOf(path) == FormatUnknown {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := Decode(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// WriteFile serializes in to path in the format selected by its extension.
func WriteFile(path string, in any) error {
	format := FormatOf(path)
	if format == FormatUnknown {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := Encode(in, format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.WriteFile(path, data, filePerm)
}

// withEmpty returns a deep copy of v with every nil slice and map replaced by
// an empty one. Nil pointers stay nil and unexported fields are dropped.
func withEmpty(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(withEmpty(v.Index(i)))
		}

		return out

	case reflect.Map:
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		for iter := v.MapRange(); iter.Next(); {
			out.SetMapIndex(iter.Key(), withEmpty(iter.Value()))
		}

		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			out.Index(i).Set(withEmpty(v.Index(i)))
		}

		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := range v.NumField() {
			if out.Field(i).CanSet() {
				out.Field(i).Set(withEmpty(v.Field(i)))
			}
		}

		return out

	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return v
		}

		out := reflect.New(v.Type()).Elem()
		if v.Kind() == reflect.Pointer {
			out.Set(reflect.New(v.Type().Elem()))
			out.Elem().Set(withEmpty(v.Elem()))
		} else {
			out.Set(withEmpty(v.Elem()))
		}

		return out

	default:
		return v
	}
}
