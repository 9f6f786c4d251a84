package signup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field identifies one input of the signup form.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Feedback classes applied to the form feedback line.
const (
	ClassSuccess = "success"
	ClassError   = "error"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

// Messages shown under the fields and on the feedback line.
const (
	MsgNameRequired     = "Name is required."
	MsgNameTooShort     = "Name must be at least 3 characters long."
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Please enter a valid email address."
	MsgPasswordRequired = "Password is required."
	MsgPasswordWeak     = "Password must be at least 8 characters long, with at least one uppercase letter, one lowercase letter, and one number."

	MsgSubmitted = "Form submitted successfully!"
	MsgFixErrors = "Please fix the errors above."
)

// emailPattern is a structural check only: something@something.something
// with no extra @ and no whitespace in any part. Whitespace includes \v,
// the Unicode separators and U+FEFF.
var emailPattern = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

// Form holds the raw field values as typed.
type Form struct {
	Name     string
	Email    string
	Password string
}

// Result is the outcome of validating a Form.
type Result struct {
	Valid    bool
	Errors   map[Field]string
	Feedback string
	Class    string
}

// Error returns the message for a field, or "" when the field passed.
func (r Result) Error(f Field) string {
	return r.Errors[f]
}

// Validate checks every field independently so all problems are reported at
// once. The feedback line only reflects the aggregate outcome.
func Validate(f Form) Result {
	res := Result{Errors: make(map[Field]string)}

	if msg := validateName(f.Name); msg != "" {
		res.Errors[FieldName] = msg
	}
	if msg := validateEmail(f.Email); msg != "" {
		res.Errors[FieldEmail] = msg
	}
	if msg := validatePassword(f.Password); msg != "" {
		res.Errors[FieldPassword] = msg
	}

	res.Valid = len(res.Errors) == 0
	if res.Valid {
		res.Feedback = MsgSubmitted
		res.Class = ClassSuccess
	} else {
		res.Feedback = MsgFixErrors
		res.Class = ClassError
	}
	return res
}

func validateName(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return MsgNameRequired
	case utf8.RuneCountInString(name) < minNameLength:
		return MsgNameTooShort
	}
	return ""
}

func validateEmail(email string) string {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return MsgEmailRequired
	case !emailPattern.MatchString(email):
		return MsgEmailInvalid
	}
	return ""
}

// validatePassword does not trim: whitespace is part of the password.
func validatePassword(pw string) string {
	if pw == "" {
		return MsgPasswordRequired
	}
	if !strongPassword(pw) {
		return MsgPasswordWeak
	}
	return ""
}

func strongPassword(pw string) bool {
	if utf8.RuneCountInString(pw) < minPasswordLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case unicode.IsDigit(r) && r < utf8.RuneSelf:
			digit = true
		}
	}
	return lower && upper && digit
}
