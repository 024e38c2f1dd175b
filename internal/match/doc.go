// Package match ranks identifiers by spelling similarity. The planner uses it
// to suggest the intended name when a registry entry names a field, type or
// enum variant that does not exist.
//
// Key functions:
//   - NormalizeIdent: folds snake_case and CamelCase spellings together
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates, Suggest: order known names by similarity
package match
