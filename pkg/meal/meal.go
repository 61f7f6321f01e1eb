// Package meal defines the journal's domain model: the meal record and its
// validation.
package meal

import "strings"

// Record describes one logged meal. The zero value is a blank record.
type Record struct {
	Food        string
	Meal        string
	Description string
}

// Field names of Record, as used in validation errors.
const (
	FieldFood        = "food"
	FieldMeal        = "meal"
	FieldDescription = "description"
)

// Fields lists the field names of Record in declared order. Validation checks
// fields in this order, and UIs list errors in this order.
var Fields = []string{FieldFood, FieldMeal, FieldDescription}

// Types lists the known meal types. Record.Meal holds either one of these or
// the empty string; selection UIs offer the blank value first, followed by
// these in order.
var Types = []string{"breakfast", "lunch", "dinner", "snack"}

// Errors maps field names to validation messages.
type Errors map[string]string

// Empty reports whether e contains no errors. A nil map is empty.
func (e Errors) Empty() bool { return len(e) == 0 }

// Validate checks r for blank fields. The returned map contains the message
// "is blank" for each blank field, keyed by field name; it is never nil, and
// is empty if and only if r is valid. Messages do not repeat the field name,
// which is already the key. The argument is not modified, and calling
// Validate again on the same record gives the same result.
func Validate(r Record) Errors {
	errs := make(Errors)
	for _, name := range Fields {
		if blank(fieldOf(r, name)) {
			errs[name] = "is blank"
		}
	}
	return errs
}

// Blank reports whether every field of r is blank.
func (r Record) Blank() bool {
	return blank(r.Food) && blank(r.Meal) && blank(r.Description)
}

// blank reports whether s is empty or consists solely of whitespace.
func blank(s string) bool { return strings.TrimSpace(s) == "" }

func fieldOf(r Record, name string) string {
	switch name {
	case FieldFood:
		return r.Food
	case FieldMeal:
		return r.Meal
	case FieldDescription:
		return r.Description
	}
	return ""
}
