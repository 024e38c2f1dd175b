// Command ssbhgen generates the binding artifacts of the exposed-type
// registry: the mapping code (mappy), the declaration stubs (stubs) and the
// JSON Schemas of the interchange format (schema). check validates the
// registry against the native packages without writing anything.
package main

import (
	"os"
)

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
