package mappy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ssbh-bindings/dyn"
	"ssbh-bindings/primitive"
)

// Error is a failed dynamic-to-native mapping.
type Error struct {
	// Kind is dyn.TypeError (wrong runtime type, absent value) or dyn.ValueError
	// (wrong length or shape, out of range integer, unknown enum constant).
	Kind *dyn.ExceptionKind
	// Path locates the offending value from the mapped root, e.g. ".entries[1].vertex_adjacency".
	Path string
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg
	}

	return strings.TrimPrefix(e.Path, ".") + ": " + e.Msg
}

// Exception converts the error into the runtime exception of its kind.
func (e *Error) Exception() *dyn.Exception {
	return &dyn.Exception{Kind: e.Kind, Message: e.Error(), Cause: e}
}

func typeErrorf(format string, args ...any) *Error {
	return &Error{Kind: dyn.TypeError, Msg: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...any) *Error {
	return &Error{Kind: dyn.ValueError, Msg: fmt.Sprintf(format, args...)}
}

func fromCoercion(err error) error {
	var cerr *primitive.CoercionError
	if !errors.As(err, &cerr) {
		return err
	}

	if cerr.Overflow {
		return &Error{Kind: dyn.ValueError, Msg: cerr.Error()}
	}

	return &Error{Kind: dyn.TypeError, Msg: cerr.Error()}
}

func prefix(err error, segment string) error {
	var merr *Error
	if errors.As(err, &merr) {
		merr.Path = segment + merr.Path
	}

	return err
}

func atIndex(err error, i int) error {
	return prefix(err, "["+strconv.Itoa(i)+"]")
}

func atField(err error, name string) error {
	return prefix(err, "."+name)
}

// AtRoot prefixes the error path with the name of the mapped root class.
func AtRoot(err error, class string) error {
	return prefix(err, class)
}

// ToException translates err into a runtime exception. Mapping errors keep
// their kind; a nil err yields nil.
func ToException(err error) *dyn.Exception {
	if err == nil {
		return nil
	}

	var exc *dyn.Exception
	if errors.As(err, &exc) {
		return exc
	}

	var merr *Error
	if errors.As(err, &merr) {
		return merr.Exception()
	}

	return dyn.TypeError.Wrap(err)
}
