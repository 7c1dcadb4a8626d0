package auth

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/chatform/internal/form"
	"github.com/DukeRupert/chatform/internal/templ/shared"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestRegisterPage_FreshForm(t *testing.T) {
	html := render(t, RegisterPage(RegisterPageData{CSRFToken: "tok123"}))

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `id="register-form"`)
	assert.Contains(t, html, `name="csrf_token" value="tok123"`)
	for _, f := range form.Fields {
		assert.Contains(t, html, `name="`+string(f)+`"`)
	}
	assert.NotContains(t, html, "field-error")
	assert.NotContains(t, html, " checked")
}

func TestRegisterForm_ShowsErrorsAndRepopulates(t *testing.T) {
	data := RegisterPageData{
		Form: form.Data{Email: "jane@", FullName: "Jane <b>", Password: "secret", Password2: "other", Remember: true},
		Errors: form.Errors{
			form.FieldEmail:     form.MsgEmailInvalid,
			form.FieldPassword2: form.MsgPasswordMismatch,
		},
	}

	html := render(t, RegisterForm(data))

	assert.Contains(t, html, `value="jane@"`)
	assert.Contains(t, html, "Jane &lt;b&gt;", "values are escaped")
	assert.NotContains(t, html, "secret", "passwords are never echoed")
	assert.Contains(t, html, form.MsgEmailInvalid)
	assert.Contains(t, html, form.MsgPasswordMismatch)
	assert.Contains(t, html, `aria-invalid="true"`)
	assert.Contains(t, html, " checked")
}

func TestRegisterForm_Flash(t *testing.T) {
	html := render(t, RegisterForm(RegisterPageData{
		Flash: &shared.Flash{Type: shared.FlashError, Message: "Invalid security token. Please try again."},
	}))

	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Invalid security token. Please try again.")
}

func TestFieldFeedback(t *testing.T) {
	tests := []struct {
		name      string
		field     form.Field
		value     string
		msg       string
		wantError bool
		wantCheck bool
	}{
		{"error", form.FieldEmail, "bad", form.MsgEmailInvalid, true, false},
		{"valid email gets check", form.FieldEmail, "a@b.com", "", false, true},
		{"empty valid slot", form.FieldFullName, "", "", false, false},
		{"password never gets check", form.FieldPassword, "x", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, FieldFeedback(tt.field, tt.value, tt.msg))

			assert.Contains(t, html, `id="`+FeedbackID(tt.field)+`"`)
			assert.Equal(t, tt.wantError, strings.Contains(html, "field-error"))
			assert.Equal(t, tt.wantCheck, strings.Contains(html, `class="check`))
			if tt.wantError {
				assert.Contains(t, html, tt.msg)
			}
		})
	}
}

func TestInputClass_ErrorVariantOverridesBorder(t *testing.T) {
	assert.Equal(t, inputBase, InputClass(""))

	cls := InputClass(form.MsgEmailRequired)
	assert.Contains(t, cls, "border-red-500")
	assert.NotContains(t, cls, "border-slate-300")
}

func TestRegisterForm_PasswordInputsCarryNoValue(t *testing.T) {
	html := render(t, RegisterForm(RegisterPageData{
		Form: form.Data{Email: "a@b.com", FullName: "Jane", Password: "x", Password2: "x"},
	}))

	assert.Contains(t, html, `<input id="email" name="email" type="text" placeholder="E-Mail" class="`)
	assert.Contains(t, html, `<input id="password" name="password" type="password" placeholder="Password" class="`+inputBase+`" hx-post`)
	assert.Equal(t, 2, strings.Count(html, `class="check`), "only email and full name get a check mark")
}
