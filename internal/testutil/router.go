package testutil

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"scribe/internal/cache"
	"scribe/internal/config"
	"scribe/internal/middleware"
	"scribe/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestConfig returns the knobs used by handler tests.
func TestConfig() *config.Config {
	return &config.Config{
		PostsPerPage:  10,
		IndexCacheTTL: time.Minute,
		CacheCapacity: 16,
	}
}

// testTemplates are stub views: one deterministic line per template so handler
// outcomes can be asserted without the web/ tree.
func testTemplates() *template.Template {
	return template.Must(template.New("test").Parse(`
{{define "posts/index.html"}}index p{{.Page.Number}}/{{.Page.TotalPages}}{{range .Posts}}[post:{{.ID}}]{{end}}{{end}}
{{define "posts/group_list.html"}}group:{{.Group.Slug}}{{range .Posts}}[post:{{.ID}}]{{end}}{{end}}
{{define "posts/profile.html"}}profile:{{.Author.Username}}{{if .Following}}[following]{{end}}{{range .Posts}}[post:{{.ID}}]{{end}}{{end}}
{{define "posts/post_detail.html"}}detail:{{.Post.ID}}[rating:{{.Rating}}]{{if .IsRating}}[rated]{{end}}{{range $k, $v := .Form.Errors}}[err:{{$k}}]{{end}}{{range .Comments}}[comment:{{.ID}}]{{end}}{{end}}
{{define "posts/create_post.html"}}{{if .IsEdit}}edit{{else}}create{{end}}[text:{{.Form.Text}}]{{range $k, $v := .Form.Errors}}[err:{{$k}}]{{end}}{{end}}
{{define "posts/follow.html"}}follow:{{.FollowCount}}{{range .Posts}}[post:{{.ID}}]{{end}}{{end}}
{{define "auth/login.html"}}login{{range $k, $v := .Form.Errors}}[err:{{$k}}]{{end}}{{end}}
{{define "auth/signup.html"}}signup{{range $k, $v := .Form.Errors}}[err:{{$k}}]{{end}}{{end}}
{{define "error.html"}}error:{{.Error}}{{end}}
`))
}

// NewTestRouter builds the real route table over stub templates and an
// in-memory session store.
func NewTestRouter(t *testing.T, pages *cache.Cache, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("scribe_session", store))
	r.Use(middleware.LoadUser())
	r.SetHTMLTemplate(testTemplates())

	router.RegisterRoutes(r, cfg, pages)
	return r
}

// Do performs one request against the router, carrying any session cookies.
func Do(r *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Login authenticates the user created by CreateUser and returns the session
// cookies to replay on later requests.
func Login(t *testing.T, r *gin.Engine, email string) []*http.Cookie {
	t.Helper()

	w := Do(r, http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {TestPassword},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect: %s", w.Body.String())
	return w.Result().Cookies()
}
