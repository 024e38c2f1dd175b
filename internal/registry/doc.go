// Package registry provides the YAML declaration of the exposed types: which
// native packages form a family, which of their types are exposed to the
// runtime, their constructors, defaults and methods, and the free functions
// of each family module.
//
// The registry is the single input shared by the mapping generator and the
// stub generator, so both see the same field names in the same order.
//
// # Schema Overview
//
//	version: "1"
//	module: ssbh_data_py
//	families:
//	  - name: skel_data
//	    package: ssbh-bindings/ssbhdata/skel
//	    root: SkelData
//	    error: SkelDataError            # defaults to <root>Error
//	    functions:
//	      - name: read_skel
//	        params:
//	          - {name: path, type: str}
//	        returns: SkelData
//	    types:
//	      - name: SkelData
//	        defaults: {major_version: 1, minor_version: 0}
//	        methods:
//	          - name: save
//	            params:
//	              - {name: path, type: str}
//	      - name: BoneData
//	        init: [name, transform, parent_index]
//	        defaults: {billboard_type: Disabled}
//	        # optional cross-check of the native field order
//	        fields: [name, transform, parent_index, billboard_type]
//
// Enum types reachable from exposed structs are exposed implicitly and need
// no entry.
package registry
