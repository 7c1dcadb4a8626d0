// Package form holds the registration form state and the rules that validate it.
//
// A Form owns the current field values (Data) and the current error messages
// (Errors). Every change event goes through SetField, which revalidates the one
// field that changed; Submit revalidates everything and either records the
// errors or hands control to the Navigator.
package form

import (
	"maps"
	"strings"
)

// Field names a form input. The values match the HTML input names.
type Field string

const (
	FieldEmail     Field = "email"
	FieldFullName  Field = "fullName"
	FieldPassword  Field = "password"
	FieldPassword2 Field = "password2"
	FieldRemember  Field = "remember"
)

// RequiredFields lists the fields that carry validation rules, in display order.
var RequiredFields = []Field{FieldEmail, FieldFullName, FieldPassword, FieldPassword2}

// Fields lists every field the form knows about.
var Fields = []Field{FieldEmail, FieldFullName, FieldPassword, FieldPassword2, FieldRemember}

// ParseField returns the Field for name and whether the form knows it.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Data is a snapshot of every field value.
type Data struct {
	Email     string
	FullName  string
	Password  string
	Password2 string
	Remember  bool
}

// Value returns the text value of a field. Remember is reported as "on" or "".
func (d Data) Value(f Field) string {
	switch f {
	case FieldEmail:
		return d.Email
	case FieldFullName:
		return d.FullName
	case FieldPassword:
		return d.Password
	case FieldPassword2:
		return d.Password2
	case FieldRemember:
		if d.Remember {
			return "on"
		}
	}
	return ""
}

// With returns a copy of d with one field overwritten. Unknown fields leave
// the copy unchanged.
func (d Data) With(f Field, value string) Data {
	switch f {
	case FieldEmail:
		d.Email = value
	case FieldFullName:
		d.FullName = value
	case FieldPassword:
		d.Password = value
	case FieldPassword2:
		d.Password2 = value
	case FieldRemember:
		d.Remember = parseChecked(value)
	}
	return d
}

// parseChecked reports whether a checkbox value means "checked".
func parseChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// Errors maps a field to its error message. A field without an entry is valid.
type Errors map[Field]string

// Get returns the message for f, or "" if f is valid.
func (e Errors) Get(f Field) string {
	return e[f]
}

// Has reports whether f has an error.
func (e Errors) Has(f Field) bool {
	return e[f] != ""
}

// set writes msg for f, dropping the entry when msg is empty.
func (e Errors) set(f Field, msg string) {
	if msg == "" {
		delete(e, f)
		return
	}
	e[f] = msg
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	maps.Copy(out, e)
	return out
}

// Strings converts the map to string keys for JSON and template consumers.
func (e Errors) Strings() map[string]string {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[string(f)] = msg
	}
	return out
}
