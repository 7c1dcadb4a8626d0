package form

import "regexp"

// Error messages. These are fixed literals shown next to the field.
const (
	MsgEmailRequired     = "provide email"
	MsgEmailInvalid      = "invalid email format"
	MsgFullNameRequired  = "provide full name"
	MsgPasswordRequired  = "provide password"
	MsgPassword2Required = "confirm password"
	MsgPasswordMismatch  = "passwords do not match"
)

// emailPattern accepts anything shaped like text@text.text, where text is any
// run without whitespace. RE2's \s is ASCII only, so the class also excludes
// \v, the Unicode separators and the BOM.
var emailPattern = regexp.MustCompile(`[^\s\v\p{Z}\x{FEFF}]+@[^\s\v\p{Z}\x{FEFF}]+\.[^\s\v\p{Z}\x{FEFF}]+`)

// rule validates one field value against the rest of the form.
type rule func(value string, snapshot Data) string

var rules = map[Field]rule{
	FieldEmail: func(value string, _ Data) string {
		if value == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(value) {
			return MsgEmailInvalid
		}
		return ""
	},
	FieldFullName: func(value string, _ Data) string {
		if value == "" {
			return MsgFullNameRequired
		}
		return ""
	},
	FieldPassword: func(value string, _ Data) string {
		if value == "" {
			return MsgPasswordRequired
		}
		return ""
	},
	FieldPassword2: func(value string, snapshot Data) string {
		if value == "" {
			return MsgPassword2Required
		}
		if value != snapshot.Password {
			return MsgPasswordMismatch
		}
		return ""
	},
}

// ValidateField returns the error message for one field, or "" if the value
// is valid. Fields without a rule (remember, unknown names) are always valid.
func ValidateField(name Field, value string, snapshot Data) string {
	r, ok := rules[name]
	if !ok {
		return ""
	}
	return r(value, snapshot)
}

// ValidateForm validates every required field of the snapshot. The result
// holds an entry only for fields that failed.
func ValidateForm(snapshot Data) Errors {
	errs := make(Errors)
	for _, f := range RequiredFields {
		errs.set(f, ValidateField(f, snapshot.Value(f), snapshot))
	}
	return errs
}
