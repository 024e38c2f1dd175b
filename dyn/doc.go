// Package dyn provides the object model of the embedded scripting runtime.
//
// Values are a closed set of variants:
//   - None, Bool, Int (arbitrary precision), Float, Str: immutable scalars
//   - *List: mutable ordered sequence, the canonical sequence representation
//   - Tuple: immutable ordered sequence
//   - *NDArray: numeric array view with a shape (first axis is iterable)
//   - *Object: instance of a *Class with ordered named slots
//
// The runtime permits a single holder of its object model at a time. Every
// operation that creates or reads dynamic objects takes the *Token obtained
// from Runtime.Acquire; Runtime.With scopes a token to a callback and releases
// it on every exit path.
//
// Failures visible to scripts are *Exception values carrying an *ExceptionKind.
package dyn
