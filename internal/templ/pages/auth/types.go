package auth

import (
	"github.com/DukeRupert/chatform/internal/form"
	"github.com/DukeRupert/chatform/internal/templ/shared"
)

// Routes the register form posts to.
const (
	RegisterPath = "/register"
	ValidatePath = "/register/validate"
)

// RegisterPageData contains data for the registration page
type RegisterPageData struct {
	Form      form.Data
	Errors    form.Errors
	Flash     *shared.Flash
	CSRFToken string
}

// inputSpec describes how one text input is rendered.
type inputSpec struct {
	Field       form.Field
	Type        string
	Placeholder string
	Echo        bool // re-populate the value on re-render
	CheckMark   bool // show a check mark once filled in and valid
}

var inputs = []inputSpec{
	{Field: form.FieldEmail, Type: "text", Placeholder: "E-Mail", Echo: true, CheckMark: true},
	{Field: form.FieldFullName, Type: "text", Placeholder: "Full name", Echo: true, CheckMark: true},
	{Field: form.FieldPassword, Type: "password", Placeholder: "Password"},
	{Field: form.FieldPassword2, Type: "password", Placeholder: "Confirm password"},
}

func specFor(f form.Field) (inputSpec, bool) {
	for _, s := range inputs {
		if s.Field == f {
			return s, true
		}
	}
	return inputSpec{}, false
}

// FeedbackID is the element id the per-field feedback fragment replaces.
func FeedbackID(f form.Field) string {
	return string(f) + "-feedback"
}
