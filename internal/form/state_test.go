package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNavigator remembers every path it was sent to.
type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

func fill(f *Form, d Data) {
	f.SetField(FieldEmail, d.Email)
	f.SetField(FieldFullName, d.FullName)
	f.SetField(FieldPassword, d.Password)
	f.SetField(FieldPassword2, d.Password2)
	f.SetChecked(FieldRemember, d.Remember)
}

func TestNew_StartsEmptyAndIdle(t *testing.T) {
	f := New(nil)

	assert.Equal(t, Data{}, f.Data())
	assert.Empty(t, f.Errors())
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, DefaultChatPath, f.ChatPath())
}

func TestSetField_PreservesOtherValues(t *testing.T) {
	f := New(nil)
	f.SetField(FieldEmail, "a@b.com")
	f.SetField(FieldFullName, "Jane Doe")

	assert.Equal(t, Data{Email: "a@b.com", FullName: "Jane Doe"}, f.Data())
}

func TestSetField_OnlyTouchesOwnError(t *testing.T) {
	f := New(nil)
	f.SetField(FieldEmail, "")
	f.SetField(FieldFullName, "")
	require.Equal(t, MsgEmailRequired, f.Errors().Get(FieldEmail))

	msg := f.SetField(FieldEmail, "a@b.com")

	assert.Empty(t, msg)
	assert.False(t, f.Errors().Has(FieldEmail))
	assert.Equal(t, MsgFullNameRequired, f.Errors().Get(FieldFullName))
}

func TestSetField_Password2UsesUpdatedSnapshot(t *testing.T) {
	f := New(nil)
	f.SetField(FieldPassword, "secret")

	assert.Equal(t, MsgPasswordMismatch, f.SetField(FieldPassword2, "secrex"))
	assert.Empty(t, f.SetField(FieldPassword2, "secret"))

	// Changing password revalidates only password; the stale confirmation
	// result stays until password2 changes again.
	f.SetField(FieldPassword, "changed")
	assert.False(t, f.Errors().Has(FieldPassword2))
}

func TestSetField_Remember(t *testing.T) {
	f := New(nil)

	for _, v := range []string{"on", "true", "1", "YES"} {
		f.SetField(FieldRemember, v)
		assert.True(t, f.Data().Remember, v)
	}
	f.SetField(FieldRemember, "off")
	assert.False(t, f.Data().Remember)

	f.SetChecked(FieldRemember, true)
	assert.True(t, f.Data().Remember)
	assert.Empty(t, f.Errors())
}

func TestSetField_UnknownFieldIgnored(t *testing.T) {
	f := New(nil)
	f.SetField(FieldEmail, "a@b.com")

	msg := f.SetField(Field("nickname"), "")

	assert.Empty(t, msg)
	assert.Equal(t, Data{Email: "a@b.com"}, f.Data())
	assert.Empty(t, f.Errors())
}

func TestReset(t *testing.T) {
	f := New(nil)
	fill(f, Data{Email: "bad", Password: "x", Password2: "y", Remember: true})
	f.Submit()
	require.Equal(t, StateInvalid, f.State())

	f.Reset()

	assert.Equal(t, Data{}, f.Data())
	assert.Empty(t, f.Errors())
	assert.Equal(t, StateIdle, f.State())
}

func TestSubmit_ValidNavigatesToChat(t *testing.T) {
	nav := &recordingNavigator{}
	f := New(nav)
	fill(f, validData())

	out := f.Submit()

	assert.True(t, out.Submitted())
	assert.Equal(t, StateSubmitted, f.State())
	assert.Empty(t, out.Errors)
	assert.Empty(t, f.Errors())
	assert.Equal(t, DefaultChatPath, out.Redirect)
	assert.Equal(t, []string{DefaultChatPath}, nav.paths)
	assert.Equal(t, Data{}, f.Data(), "values reset after submit")
}

func TestSubmit_AllEmpty(t *testing.T) {
	nav := &recordingNavigator{}
	f := New(nav)

	out := f.Submit()

	assert.Equal(t, StateInvalid, out.State)
	assert.Len(t, out.Errors, 4)
	assert.Equal(t, out.Errors, f.Errors())
	assert.Empty(t, out.Redirect)
	assert.Empty(t, nav.paths)
}

func TestSubmit_PasswordMismatch(t *testing.T) {
	nav := &recordingNavigator{}
	f := New(nav)
	d := validData()
	d.Password2 = "y"
	fill(f, d)

	out := f.Submit()

	assert.Equal(t, Errors{FieldPassword2: MsgPasswordMismatch}, out.Errors)
	assert.Empty(t, nav.paths)
}

func TestSubmit_ReplacesPreviousErrors(t *testing.T) {
	f := New(nil)
	f.Submit()
	require.Len(t, f.Errors(), 4)

	f.Restore(Data{Email: "a@b.com", FullName: "Jane", Password: "x"})
	out := f.Submit()

	assert.Equal(t, Errors{FieldPassword2: MsgPassword2Required}, out.Errors)
	assert.Equal(t, out.Errors, f.Errors())
}

func TestSubmit_InvalidThenValid(t *testing.T) {
	nav := &recordingNavigator{}
	f := New(nav, WithChatPath("/rooms"))
	d := validData()
	d.Email = "nope"
	fill(f, d)

	require.Equal(t, StateInvalid, f.Submit().State)

	f.SetField(FieldEmail, "a@b.com")
	out := f.Submit()

	assert.Equal(t, StateSubmitted, out.State)
	assert.Equal(t, []string{"/rooms"}, nav.paths)
}

func TestSubmit_AgainAfterSubmittedUsesResetData(t *testing.T) {
	nav := &recordingNavigator{}
	f := New(nav)
	fill(f, validData())
	require.Equal(t, StateSubmitted, f.Submit().State)

	out := f.Submit()

	assert.Equal(t, StateInvalid, out.State)
	assert.Equal(t, StateInvalid, f.State())
	assert.Equal(t, Errors{
		FieldEmail:     MsgEmailRequired,
		FieldFullName:  MsgFullNameRequired,
		FieldPassword:  MsgPasswordRequired,
		FieldPassword2: MsgPassword2Required,
	}, out.Errors)
	assert.Empty(t, out.Redirect)
	assert.Equal(t, []string{DefaultChatPath}, nav.paths, "no second navigation")
}

func TestSubmit_NavigatorFunc(t *testing.T) {
	var got string
	f := New(NavigatorFunc(func(path string) { got = path }))
	f.Restore(validData())

	f.Submit()

	assert.Equal(t, DefaultChatPath, got)
}

func TestErrors_ReturnsCopy(t *testing.T) {
	f := New(nil)
	f.Submit()

	errs := f.Errors()
	delete(errs, FieldEmail)

	assert.True(t, f.Errors().Has(FieldEmail))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "invalid", StateInvalid.String())
	assert.Equal(t, "submitted", StateSubmitted.String())
	assert.Equal(t, "unknown", State(42).String())
}
