package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"scribe/internal/cache"
	"scribe/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestLoginHonoursContinueTarget(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	user := testutil.CreateUser(t, "ana")

	w := testutil.Do(r, http.MethodPost, "/login", url.Values{
		"email":    {user.Email},
		"password": {testutil.TestPassword},
		"next":     {"/create"},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/create", w.Header().Get("Location"))
}

func TestLoginRejectsOffsiteContinueTarget(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	user := testutil.CreateUser(t, "ana")

	w := testutil.Do(r, http.MethodPost, "/login", url.Values{
		"email":    {user.Email},
		"password": {testutil.TestPassword},
		"next":     {"https://evil.example.com/"},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	user := testutil.CreateUser(t, "ana")

	w := testutil.Do(r, http.MethodPost, "/login", url.Values{
		"email":    {user.Email},
		"password": {"wrong-password"},
	}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "[err:form]")
}

func TestProtectedRouteRedirectsAnonymous(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	w := testutil.Do(r, http.MethodGet, "/create", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login?next="+url.QueryEscape("/create"), w.Header().Get("Location"))
}

func TestSignupThenLogout(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	w := testutil.Do(r, http.MethodPost, "/signup", url.Values{
		"username": {"ana"},
		"email":    {"ana@example.com"},
		"password": {"secret123"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()

	// The fresh session can reach protected routes.
	w = testutil.Do(r, http.MethodGet, "/create", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(r, http.MethodGet, "/logout", nil, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	cookies = w.Result().Cookies()

	w = testutil.Do(r, http.MethodGet, "/create", nil, cookies)
	require.Equal(t, http.StatusFound, w.Code)
}
