// Package validation holds the shared signup-form rules. The rules run in a
// fixed order and the first violation wins, so the user is always told about
// the same problem for the same input.
package validation

import "strings"

// MinPasswordLen is the minimum accepted password length, in characters.
const MinPasswordLen = 8

// Messages shown for each rule, used both for the toast and for the
// field-level annotation.
const (
	MsgRequired       = "Please complete all required fields."
	MsgPasswordLength = "Password must be at least 8 characters."
	MsgPasswordMatch  = "Passwords do not match."
	MsgTerms          = "Please accept the Terms and Privacy Policy."
)

// Field names referenced by violations.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldConfirm  = "confirm"
	FieldTerms    = "terms"
)

// SignupForm carries the raw field values as the user typed them. Name and
// Email are trimmed before checking; the password fields are not, since
// whitespace is significant there.
type SignupForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
	Terms    bool
}

// Violation is a single failed rule: the offending field and the message to
// surface.
type Violation struct {
	Field   string
	Message string
}

// rule checks one aspect of the form and reports the violation, if any.
type rule func(f SignupForm) *Violation

// rules in evaluation order: required fields, password length, password
// confirmation, terms acceptance.
var rules = []rule{
	checkRequired,
	checkPasswordLength,
	checkPasswordMatch,
	checkTerms,
}

// CheckSignup evaluates the rules in order and returns the first violation,
// or nil when the form is acceptable. It is a pure function of the field
// values.
func CheckSignup(f SignupForm) *Violation {
	for _, r := range rules {
		if v := r(f); v != nil {
			return v
		}
	}
	return nil
}

func checkRequired(f SignupForm) *Violation {
	// The reported field is the first empty one, in display order.
	switch {
	case strings.TrimSpace(f.Name) == "":
		return &Violation{Field: FieldName, Message: MsgRequired}
	case strings.TrimSpace(f.Email) == "":
		return &Violation{Field: FieldEmail, Message: MsgRequired}
	case f.Password == "":
		return &Violation{Field: FieldPassword, Message: MsgRequired}
	}
	return nil
}

func checkPasswordLength(f SignupForm) *Violation {
	if len([]rune(f.Password)) < MinPasswordLen {
		return &Violation{Field: FieldPassword, Message: MsgPasswordLength}
	}
	return nil
}

func checkPasswordMatch(f SignupForm) *Violation {
	if f.Confirm != f.Password {
		return &Violation{Field: FieldConfirm, Message: MsgPasswordMatch}
	}
	return nil
}

func checkTerms(f SignupForm) *Violation {
	if !f.Terms {
		return &Violation{Field: FieldTerms, Message: MsgTerms}
	}
	return nil
}
