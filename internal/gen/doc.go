// Package gen renders the mapping code of a resolved plan.
//
// Generation uses text/template and golang.org/x/tools/imports, producing a
// single file with, per exposed struct:
//   - XxxClass, the runtime class with its slots and construction defaults
//   - XxxAdapter, the mappy.Adapter composed of the two converters
//   - XxxToDynamic, filling every slot through its field adapter
//   - XxxToNative, reading every slot back in field order
//
// Enums get a class of constants and a mappy.Enum adapter. Container adapters
// that are not plain identifiers are hoisted into package variables
// (mappyAdapter1, mappyAdapter2, ...) shared by every field spelling them the
// same way. The file ends with the Families table describing the generated
// submodules.
package gen
