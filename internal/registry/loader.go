package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultModule is the runtime module name used when the registry names none.
const DefaultModule = "ssbh_data_py"

// LoadFile loads and parses a registry file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Module == "" {
		f.Module = DefaultModule
	}

	for i := range f.Families {
		fam := &f.Families[i]
		if fam.Error == "" && fam.Root != "" {
			fam.Error = fam.Root + "Error"
		}

		for j := range fam.Functions {
			defaultReturns(&fam.Functions[j])
		}

		for j := range fam.Types {
			for k := range fam.Types[j].Methods {
				defaultReturns(&fam.Types[j].Methods[k])
			}
		}
	}
}

func defaultReturns(fn *Function) {
	if fn.Returns == "" {
		fn.Returns = "None"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
