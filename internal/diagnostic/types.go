package diagnostic

import (
	"fmt"
	"strings"

	"ssbh-bindings/internal/common"
)

// Severity ranks a diagnostic. Only errors block generation.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding of registry validation or planning.
type Diagnostic struct {
	Severity Severity
	// Code is stable across releases, e.g. "field_not_found".
	Code    string
	Message string
	// Family is the registry family the finding belongs to, "" for file level findings.
	Family string
	// FieldPath locates the type or field, e.g. "BoneData.transform".
	FieldPath string
	// Suggestions are close names the registry may have meant.
	Suggestions []string
}

// String renders "[family] path: [code] message (did you mean a or b?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Family != "" {
		b.WriteString("[" + d.Family + "] ")
	}

	if d.FieldPath != "" {
		b.WriteString(d.FieldPath + " ")
	}

	if b.Len() > 0 {
		s := strings.TrimSuffix(b.String(), " ")
		b.Reset()
		b.WriteString(s + ": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, " or ") + "?)")
	}

	return b.String()
}

// List is a non-empty set of error diagnostics returned as an error.
type List []Diagnostic

func (l List) Error() string {
	parts := make([]string, len(l))
	for i, d := range l {
		parts[i] = d.String()
	}

	return strings.Join(parts, "; ")
}

// Diagnostics collects the findings of one build step.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError records an error. suggestions are appended to the message when rendered.
func (d *Diagnostics) AddError(code, message, family, fieldPath string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Family:      family,
		FieldPath:   fieldPath,
		Suggestions: suggestions,
	})
}

// AddWarning records a finding that does not block generation.
func (d *Diagnostics) AddWarning(code, message, family, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		Family:    family,
		FieldPath: fieldPath,
	})
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid is the negation of HasErrors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Codes returns the error codes in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		codes[i] = e.Code
	}

	return codes
}

// Error returns the errors as a List, nil when there are none.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	return append(List(nil), d.Errors...)
}
