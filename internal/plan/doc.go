// Package plan resolves the registry against the analyzed native packages.
//
// Resolution pipeline:
//  1. Analyze the family packages → type graph
//  2. Load and validate the registry YAML
//  3. For each family and each declared type:
//     - dispatch every exported field to a container kind
//     - build the adapter expression, the stub type and the slot default
//     - cross-check declared fields, constructor parameters and defaults
//  4. Walk the types reachable from each root, collecting enums and
//     reporting declared types nothing reaches
//
// Any error diagnostic means nothing is generated.
package plan
