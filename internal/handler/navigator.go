package handler

import (
	"net/http"
)

// httpNavigator is the page-router a successful submit hands control to.
// htmx requests get an HX-Redirect header, JSON clients a redirect field,
// and plain form posts a 303.
type httpNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n httpNavigator) Navigate(path string) {
	switch {
	case isHTMX(n.r):
		n.w.Header().Set("HX-Redirect", path)
		n.w.WriteHeader(http.StatusOK)
	case acceptsJSON(n.r):
		writeJSON(n.w, http.StatusOK, map[string]string{"redirect": path})
	default:
		http.Redirect(n.w, n.r, path, http.StatusSeeOther)
	}
}
