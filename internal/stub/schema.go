package stub

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"ssbh-bindings/internal/plan"
)

var ErrRootMismatch = errors.New("root type does not match the family")

var textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()

// SchemaFilename returns the schema file name of fam, e.g. "adj_data.schema.json".
func SchemaFilename(fam *plan.Family) string {
	return fam.Name + ".schema.json"
}

// Schema renders the JSON Schema of the interchange document of fam. root is
// the native root type. Enums of the family that marshal as text are
// described by their variant names.
func Schema(fam *plan.Family, root reflect.Type) ([]byte, error) {
	if root.Kind() == reflect.Pointer {
		root = root.Elem()
	}

	if root.PkgPath() != fam.Package || root.Name() != fam.Root {
		return nil, fmt.Errorf("%w: %s has root %s.%s, got %s", ErrRootMismatch, fam.Name, fam.Package, fam.Root, root)
	}

	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.PkgPath() != fam.Package || !t.Implements(textMarshaler) {
				return nil
			}

			for _, e := range fam.Enums {
				if e.Name != t.Name() {
					continue
				}

				names := make([]any, len(e.Variants))
				for i, v := range e.Variants {
					names[i] = v.Name
				}

				return &jsonschema.Schema{Type: "string", Enum: names}
			}

			return nil
		},
	}

	schema := r.ReflectFromType(root)
	schema.Title = fam.Module + "." + fam.Root

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to create json schema for %s: %w", fam.Name, err)
	}

	return append(out, '\n'), nil
}
