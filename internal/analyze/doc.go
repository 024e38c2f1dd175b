// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the native data structs, their fields and enums.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/enum/pointer/slice/array/external)
//   - FieldInfo: describes field name, type, tags, and the dynamic slot name
//   - ContainerEnum: the mapping shape of a field, see Dispatch
package analyze
