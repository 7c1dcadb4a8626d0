package form

// DefaultChatPath is where a successful submit navigates to.
const DefaultChatPath = "/chat"

// State is the submit state of a form.
type State int

const (
	StateIdle State = iota
	StateInvalid
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInvalid:
		return "invalid"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Navigator transfers control to another view.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (fn NavigatorFunc) Navigate(path string) { fn(path) }

// Option configures a Form.
type Option func(*Form)

// WithChatPath overrides the path a successful submit navigates to.
func WithChatPath(path string) Option {
	return func(f *Form) {
		if path != "" {
			f.chatPath = path
		}
	}
}

// Form owns the values and errors of one form instance. It is not safe for
// concurrent use; each request or UI instance gets its own.
type Form struct {
	data     Data
	errors   Errors
	state    State
	nav      Navigator
	chatPath string
}

// New returns an empty form in the Idle state.
func New(nav Navigator, opts ...Option) *Form {
	f := &Form{
		errors:   make(Errors),
		nav:      nav,
		chatPath: DefaultChatPath,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Data returns the current field values.
func (f *Form) Data() Data { return f.data }

// Errors returns a copy of the current error messages.
func (f *Form) Errors() Errors { return f.errors.Clone() }

// State returns the current submit state.
func (f *Form) State() State { return f.state }

// ChatPath returns the navigation target for a successful submit.
func (f *Form) ChatPath() string { return f.chatPath }

// SetField overwrites one field and revalidates it against the updated
// values. Only that field's error entry changes. The new message ("" when
// valid) is returned.
func (f *Form) SetField(name Field, value string) string {
	f.data = f.data.With(name, value)
	msg := ValidateField(name, value, f.data)
	if _, known := ParseField(string(name)); known {
		f.errors.set(name, msg)
	}
	return msg
}

// SetChecked is SetField for checkbox inputs.
func (f *Form) SetChecked(name Field, checked bool) string {
	value := ""
	if checked {
		value = "on"
	}
	return f.SetField(name, value)
}

// Restore replaces every value at once without validating. It is used to
// rebuild a form from a snapshot the browser posted back.
func (f *Form) Restore(d Data) {
	f.data = d
	f.errors = make(Errors)
	f.state = StateIdle
}

// Reset returns the form to its freshly mounted state.
func (f *Form) Reset() {
	f.Restore(Data{})
}

// Outcome reports what a submit did.
type Outcome struct {
	State    State
	Errors   Errors
	Redirect string
}

// Submitted reports whether the submit navigated away.
func (o Outcome) Submitted() bool { return o.State == StateSubmitted }

// Submit validates every field. With errors, they replace the current error
// map and the form becomes Invalid. Without, the errors are cleared, the
// values reset and the Navigator is sent to the chat path.
func (f *Form) Submit() Outcome {
	errs := ValidateForm(f.data)
	if len(errs) > 0 {
		f.errors = errs
		f.state = StateInvalid
		return Outcome{State: f.state, Errors: errs.Clone()}
	}

	f.data = Data{}
	f.errors = make(Errors)
	f.state = StateSubmitted
	if f.nav != nil {
		f.nav.Navigate(f.chatPath)
	}
	return Outcome{State: f.state, Errors: make(Errors), Redirect: f.chatPath}
}
