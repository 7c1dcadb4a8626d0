package csrf

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_UniqueAndURLSafe(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
}

func TestValidateToken(t *testing.T) {
	assert.True(t, ValidateToken("abc", "abc"))
	assert.False(t, ValidateToken("abc", "abd"))
	assert.False(t, ValidateToken("", ""))
	assert.False(t, ValidateToken("abc", ""))
}

func postWithToken(cookieToken, formToken string) *http.Request {
	body := url.Values{FormFieldName: {formToken}}.Encode()
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookieToken != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookieToken})
	}
	return req
}

func TestValidateRequest(t *testing.T) {
	assert.True(t, ValidateRequest(postWithToken("tok", "tok")))
	assert.False(t, ValidateRequest(postWithToken("tok", "other")))
	assert.False(t, ValidateRequest(postWithToken("", "tok")))
}

func TestValidateRequest_Header(t *testing.T) {
	req := postWithToken("tok", "")
	req.Header.Set(HeaderName, "tok")

	assert.True(t, ValidateRequest(req))
}

func TestEnsureToken_ReusesExistingCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/register", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "existing"})
	rec := httptest.NewRecorder()

	token, err := EnsureToken(rec, req, false)

	require.NoError(t, err)
	assert.Equal(t, "existing", token)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEnsureToken_IssuesCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/register", nil)
	rec := httptest.NewRecorder()

	token, err := EnsureToken(rec, req, true)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}
