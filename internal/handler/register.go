// Package handler contains HTTP handlers for the chat registration form.
//
// The browser is the rendering surface: every input change posts the whole
// form to /register/validate and gets back that field's feedback fragment,
// and the submit posts to /register. The server keeps no state between
// requests; each request rebuilds a form.Form from the posted snapshot.
package handler

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/a-h/templ"

	"github.com/DukeRupert/chatform/internal/csrf"
	"github.com/DukeRupert/chatform/internal/domain"
	"github.com/DukeRupert/chatform/internal/form"
	"github.com/DukeRupert/chatform/internal/metrics"
	authpages "github.com/DukeRupert/chatform/internal/templ/pages/auth"
	chatpages "github.com/DukeRupert/chatform/internal/templ/pages/chat"
	"github.com/DukeRupert/chatform/internal/templ/shared"
)

// RegisterHandler serves the registration form and the chat view it leads to.
//
// Routes handled:
// - GET  /                  -> redirect to /register
// - GET  /register          -> ShowRegister
// - POST /register/validate -> Validate (one field, on change)
// - POST /register          -> Submit (whole form)
// - GET  {chatPath}         -> ShowChat
// - anything else           -> 404
type RegisterHandler struct {
	renderer *Renderer
	logger   *slog.Logger
	chatPath string
	isSecure bool
}

// NewRegisterHandler creates a RegisterHandler. chatPath is where a valid
// submit navigates to; isSecure sets the Secure flag on cookies.
func NewRegisterHandler(logger *slog.Logger, chatPath string, isSecure bool) *RegisterHandler {
	if chatPath == "" {
		chatPath = form.DefaultChatPath
	}
	return &RegisterHandler{
		renderer: NewRenderer(logger),
		logger:   logger,
		chatPath: chatPath,
		isSecure: isSecure,
	}
}

// newForm mounts a form whose successful submit navigates through w.
func (h *RegisterHandler) newForm(w http.ResponseWriter, r *http.Request) *form.Form {
	return form.New(httpNavigator{w: w, r: r}, form.WithChatPath(h.chatPath))
}

// =============================================================================
// GET /register - Mount
// =============================================================================

// ShowRegister renders an empty form with a CSRF token.
func (h *RegisterHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	token, err := csrf.EnsureToken(w, r, h.isSecure)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	f := h.newForm(w, r)
	h.renderer.Render(w, r, http.StatusOK, authpages.RegisterPage(authpages.RegisterPageData{
		Form:      f.Data(),
		Errors:    f.Errors(),
		CSRFToken: token,
	}))
}

// =============================================================================
// POST /register/validate - Change Event
// =============================================================================

// Validate handles a single field change. The changed field's name comes from
// htmx's HX-Trigger-Name header, or the "field" form value for other clients.
// Only that field is revalidated; the response is its feedback fragment.
func (h *RegisterHandler) Validate(w http.ResponseWriter, r *http.Request) {
	const op = "register.validate"

	if err := r.ParseForm(); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Invalid form submission"))
		return
	}
	if !csrf.ValidateRequest(r) {
		ErrorResponse(w, r, h.logger, domain.Forbidden(op, "Invalid security token. Please reload the page."))
		return
	}

	name := r.Header.Get("HX-Trigger-Name")
	if name == "" {
		name = r.PostFormValue("field")
	}
	field, ok := form.ParseField(name)
	if !ok {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Unknown field"))
		return
	}

	f := h.newForm(w, r)
	f.Restore(decodeFormData(r))
	msg := f.SetField(field, r.PostFormValue(string(field)))
	metrics.ObserveFieldValidation(string(field), msg)

	if acceptsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]string{"field": string(field), "error": msg})
		return
	}

	if field == form.FieldRemember {
		// The checkbox has no feedback slot
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, authpages.FieldFeedback(field, f.Data().Value(field), msg))
}

// =============================================================================
// POST /register - Submit
// =============================================================================

// Submit validates the whole form. Errors re-render the form (or come back as
// JSON); a clean form navigates to the chat view.
func (h *RegisterHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "register.submit"

	if err := r.ParseForm(); err != nil {
		h.logger.Info("failed to parse form", "error", err)
		h.renderFormWithFlash(w, r, http.StatusBadRequest, form.Data{}, "Invalid form submission. Please try again.")
		return
	}

	data := decodeFormData(r)

	if !csrf.ValidateRequest(r) {
		h.logger.Warn("csrf validation failed", "path", r.URL.Path)
		if acceptsJSON(r) {
			ErrorResponse(w, r, h.logger, domain.Forbidden(op, "Invalid security token"))
			return
		}
		h.renderFormWithFlash(w, r, http.StatusForbidden, data, "Invalid security token. Please try again.")
		return
	}

	f := h.newForm(w, r)
	f.Restore(data)
	out := f.Submit()

	failed := fieldNames(out.Errors)
	metrics.ObserveSubmission(out.State.String(), failed)

	if out.Submitted() {
		// The navigator has already written the response
		h.logger.Info("registration form submitted", "redirect", out.Redirect, "remember", data.Remember)
		return
	}

	h.logger.Info("registration form rejected", "fields", failed)

	if acceptsJSON(r) {
		ValidationErrorResponse(w, r, h.logger, domain.NewValidationError(op, out.Errors.Strings()))
		return
	}

	h.renderForm(w, r, http.StatusOK, authpages.RegisterPageData{
		Form:      data,
		Errors:    out.Errors,
		CSRFToken: csrf.FromRequest(r),
	})
}

// renderFormWithFlash re-renders the form under a fresh CSRF token with an
// error flash and no field errors.
func (h *RegisterHandler) renderFormWithFlash(w http.ResponseWriter, r *http.Request, status int, data form.Data, message string) {
	token, err := csrf.RefreshToken(w, h.isSecure)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	// htmx does not swap 4xx responses, so the flash would never show
	if isHTMX(r) {
		status = http.StatusOK
	}

	h.renderForm(w, r, status, authpages.RegisterPageData{
		Form:      data,
		Errors:    form.Errors{},
		Flash:     &shared.Flash{Type: shared.FlashError, Message: message},
		CSRFToken: token,
	})
}

// renderForm writes the form fragment for htmx and the full page otherwise.
func (h *RegisterHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, data authpages.RegisterPageData) {
	var c templ.Component
	if isHTMX(r) {
		c = authpages.RegisterForm(data)
	} else {
		c = authpages.RegisterPage(data)
	}
	h.renderer.Render(w, r, status, c)
}

// =============================================================================
// GET /chat - Chat View
// =============================================================================

// ShowChat renders the chat view.
func (h *RegisterHandler) ShowChat(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, chatpages.ChatPage())
}

// =============================================================================
// Helpers
// =============================================================================

// decodeFormData reads a form snapshot from a parsed request. The input names
// are the form.Field values.
func decodeFormData(r *http.Request) form.Data {
	var d form.Data
	for _, f := range form.Fields {
		d = d.With(f, r.PostFormValue(string(f)))
	}
	return d
}

// fieldNames returns the failing field names in a stable order for logs and
// metrics.
func fieldNames(errs form.Errors) []string {
	names := make([]string, 0, len(errs))
	for f := range errs {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// RegisterRoutes registers the form routes on mux. submitLimit and
// validateLimit wrap the two POST routes; nil leaves a route unlimited.
func (h *RegisterHandler) RegisterRoutes(mux *http.ServeMux, submitLimit, validateLimit func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, authpages.RegisterPath, http.StatusSeeOther)
	})
	mux.HandleFunc("GET "+authpages.RegisterPath, h.ShowRegister)
	mux.Handle("POST "+authpages.RegisterPath, wrap(submitLimit, http.HandlerFunc(h.Submit)))
	mux.Handle("POST "+authpages.ValidatePath, wrap(validateLimit, http.HandlerFunc(h.Validate)))
	mux.HandleFunc("GET "+h.chatPath, h.ShowChat)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		NotFoundResponse(w, r, h.logger)
	})
}

func wrap(mw func(http.Handler) http.Handler, next http.Handler) http.Handler {
	if mw == nil {
		return next
	}
	return mw(next)
}
