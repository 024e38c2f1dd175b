package dyn

import (
	"errors"
	"fmt"
)

// ExceptionKind is an exception class. Kinds form a single inheritance tree
// rooted at BaseException.
type ExceptionKind struct {
	Module string
	Name   string
	Parent *ExceptionKind
}

// Builtin exception kinds.
var (
	BaseException  = &ExceptionKind{Name: "Exception"}
	TypeError      = &ExceptionKind{Name: "TypeError", Parent: BaseException}
	ValueError     = &ExceptionKind{Name: "ValueError", Parent: BaseException}
	AttributeError = &ExceptionKind{Name: "AttributeError", Parent: BaseException}
	ImportError    = &ExceptionKind{Name: "ImportError", Parent: BaseException}
	OSError        = &ExceptionKind{Name: "OSError", Parent: BaseException}
)

// NewExceptionKind declares an exception class in module deriving from parent.
func NewExceptionKind(module, name string, parent *ExceptionKind) *ExceptionKind {
	if parent == nil {
		parent = BaseException
	}

	return &ExceptionKind{Module: module, Name: name, Parent: parent}
}

// QualifiedName returns module.Name, or Name for builtins.
func (k *ExceptionKind) QualifiedName() string {
	if k.Module == "" {
		return k.Name
	}

	return k.Module + "." + k.Name
}

// IsSubclass reports whether k is other or derives from it.
func (k *ExceptionKind) IsSubclass(other *ExceptionKind) bool {
	for cur := k; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}

	return false
}

// New creates an exception of this kind.
func (k *ExceptionKind) New(msg string) *Exception {
	return &Exception{Kind: k, Message: msg}
}

// Errorf creates an exception of this kind with a formatted message.
func (k *ExceptionKind) Errorf(format string, args ...any) *Exception {
	return &Exception{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an exception of this kind whose message is the text of err.
func (k *ExceptionKind) Wrap(err error) *Exception {
	return &Exception{Kind: k, Message: err.Error(), Cause: err}
}

// Exception is a runtime-visible failure.
type Exception struct {
	Kind    *ExceptionKind
	Message string
	Cause   error
}

func (e *Exception) Error() string {
	return e.Kind.Name + ": " + e.Message
}

func (e *Exception) Unwrap() error {
	return e.Cause
}

// Is matches another *Exception of the same kind or an ancestor kind.
func (e *Exception) Is(target error) bool {
	var other *Exception
	if !errors.As(target, &other) {
		return false
	}

	return e.Kind.IsSubclass(other.Kind) && (other.Message == "" || other.Message == e.Message)
}

// IsKind reports whether err is an *Exception of kind k or a subclass of it.
func IsKind(err error, k *ExceptionKind) bool {
	var exc *Exception
	if !errors.As(err, &exc) {
		return false
	}

	return exc.Kind.IsSubclass(k)
}
