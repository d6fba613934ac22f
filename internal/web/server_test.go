package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/routes"
	"github.com/dileepkakara/portfolio/internal/testutil"
)

type webSuite struct {
	t     *testing.T
	srv   *Server
	r     *gin.Engine
	admin *client.Client
	token string
}

func newWeb(t *testing.T) *webSuite {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "admin@example.com", "admin123", models.RoleAdmin)
	apiCfg := &config.Config{JWTSecret: "test", JWTExpiresIn: time.Hour, AllowRegistration: true, CORSOrigins: []string{"*"}}
	api := httptest.NewServer(routes.NewRouter(db, apiCfg, nil, zap.NewNop()))

	c := client.New(api.URL, client.WithTimeout(5*time.Second))
	srv := New(&config.WebConfig{}, c, zap.NewNop())
	t.Cleanup(func() {
		srv.Wait()
		api.Close()
	})

	token, err := c.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	return &webSuite{t: t, srv: srv, r: srv.Handler(), admin: c.WithToken(token), token: token}
}

func (s *webSuite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func (s *webSuite) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func (s *webSuite) session() *http.Cookie {
	return &http.Cookie{Name: cookieToken, Value: s.token}
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestIndexFallsBackToDefaults(t *testing.T) {
	s := newWeb(t)

	w := s.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Restaurant Management System")
	assert.Contains(t, body, "Visakhapatnam, India")
	assert.Contains(t, body, `class="logo">DK<`)
	assert.NotContains(t, body, "light-mode")

	tracked := cookie(w, cookieTracked)
	require.NotNil(t, tracked)
	s.srv.Wait()

	n, err := s.admin.VisitorCount(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.Equal(t, http.StatusOK, s.get("/", tracked).Code)
	s.srv.Wait()
	n, err = s.admin.VisitorCount(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestIndexRendersAPIContent(t *testing.T) {
	s := newWeb(t)
	ctx := context.Background()
	_, err := s.admin.CreateProject(ctx, client.ProjectInput{
		Title: "Portfolio CMS", Description: "Built with **gin**", Image: "https://img.example/p.png", Tags: []string{"Go"},
	})
	require.NoError(t, err)
	_, err = s.admin.CreateSkill(ctx, client.SkillInput{Name: "Golang", Icon: "fab fa-golang"})
	require.NoError(t, err)

	body := s.get("/", &http.Cookie{Name: cookieTracked, Value: "1"}, &http.Cookie{Name: cookieTheme, Value: themeLight}).Body.String()

	assert.Contains(t, body, "Portfolio CMS")
	assert.Contains(t, body, "<strong>gin</strong>")
	assert.Contains(t, body, `<span class="project-tag">Go</span>`)
	assert.Contains(t, body, "Golang")
	assert.NotContains(t, body, "Restaurant Management System")
	assert.Contains(t, body, `class="light-mode"`)
}

func TestContactSendsMessage(t *testing.T) {
	s := newWeb(t)

	w := s.post("/contact", url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hello there"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you, Ana! Your message has been sent successfully.")

	msgs, err := s.admin.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello there", msgs[0].Message)
}

func TestContactFailureKeepsDraft(t *testing.T) {
	s := newWeb(t)

	w := s.post("/contact", url.Values{"name": {"Ana"}, "email": {"not-an-email"}, "message": {"Hi"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), contactFailed)
	assert.Contains(t, w.Body.String(), `value="Ana"`)
}

func TestThemeToggle(t *testing.T) {
	s := newWeb(t)

	w := s.get("/theme?next=/admin")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	require.NotNil(t, cookie(w, cookieTheme))
	assert.Equal(t, themeLight, cookie(w, cookieTheme).Value)

	w = s.get("/theme", &http.Cookie{Name: cookieTheme, Value: themeLight})
	assert.Equal(t, themeDark, cookie(w, cookieTheme).Value)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = s.get("/theme?mode=light&next=//evil.example")
	assert.Equal(t, themeLight, cookie(w, cookieTheme).Value)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAdminRequiresLogin(t *testing.T) {
	s := newWeb(t)

	w := s.get("/admin")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Login")

	assert.Contains(t, s.get("/admin?register=1").Body.String(), "Create Admin Account")

	w = s.get("/admin/projects")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestLogin(t *testing.T) {
	s := newWeb(t)

	w := s.post("/admin/login", url.Values{"email": {"admin@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), loginFailed)
	assert.Nil(t, cookie(w, cookieToken))

	w = s.post("/admin/login", url.Values{"email": {"admin@example.com"}, "password": {"admin123"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))
	tok := cookie(w, cookieToken)
	require.NotNil(t, tok)
	assert.True(t, tok.HttpOnly)
	assert.NotEmpty(t, tok.Value)
}

func TestRegisterAndLogout(t *testing.T) {
	s := newWeb(t)

	w := s.post("/admin/register", url.Values{"fullName": {"New Admin"}, "email": {"new@example.com"}, "password": {"secret1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.NotNil(t, cookie(w, cookieToken))

	w = s.post("/admin/register", url.Values{"fullName": {"Again"}, "email": {"new@example.com"}, "password": {"secret1"}})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")

	w = s.post("/admin/logout", nil, s.session())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	out := cookie(w, cookieToken)
	require.NotNil(t, out)
	assert.Empty(t, out.Value)
	assert.Negative(t, out.MaxAge)
}

func TestAdminProjectLifecycle(t *testing.T) {
	s := newWeb(t)
	ctx := context.Background()

	w := s.get("/admin/projects?new=1", s.session())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/admin/projects/save"`)
	assert.Contains(t, w.Body.String(), "Projects (0)")

	w = s.post("/admin/projects/save", url.Values{
		"title":       {"Chatbot"},
		"description": {"An LLM chatbot"},
		"image":       {"https://img.example/c.png"},
		"tags":        {"Go, gin"},
	}, s.session())
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))

	projects, err := s.admin.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	id := projects[0].ID
	assert.Equal(t, []string{"Go", "gin"}, projects[0].Tags)

	body := s.get("/admin/projects?project="+id, s.session()).Body.String()
	assert.Contains(t, body, "Projects (1)")
	assert.Contains(t, body, "Project Navigator")
	assert.Contains(t, body, "project-num-btn active")

	body = s.get("/admin/projects?edit="+id, s.session()).Body.String()
	assert.Contains(t, body, `name="edit_id" value="`+id+`"`)

	w = s.post("/admin/projects/save", url.Values{
		"edit_id":     {id},
		"title":       {"Chatbot v2"},
		"description": {"An LLM chatbot"},
		"image":       {"https://img.example/c.png"},
	}, s.session())
	require.Equal(t, http.StatusSeeOther, w.Code)
	projects, err = s.admin.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Chatbot v2", projects[0].Title)

	w = s.get("/admin/projects/"+id+"/delete", s.session())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Delete this project?")

	w = s.post("/admin/projects/"+id+"/delete", url.Values{"confirm": {"no"}}, s.session())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	projects, err = s.admin.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	w = s.post("/admin/projects/"+id+"/delete", url.Values{"confirm": {"yes"}}, s.session())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	projects, err = s.admin.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestAdminSaveMissingRequiredKeepsDraft(t *testing.T) {
	s := newWeb(t)

	w := s.post("/admin/skills/save", url.Values{"name": {"Rust"}}, s.session())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill all required fields")
	assert.Contains(t, w.Body.String(), `value="Rust"`)

	skills, err := s.admin.ListSkills(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestAdminAboutSaved(t *testing.T) {
	s := newWeb(t)

	body := s.get("/admin/about", s.session()).Body.String()
	assert.Contains(t, body, "No about details added yet.")

	w := s.post("/admin/about/save", url.Values{"text": {"Hello from Vizag"}, "location": {"Vizag"}}, s.session())
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/about?saved=1", w.Header().Get("Location"))

	body = s.get("/admin/about?saved=1", s.session()).Body.String()
	assert.Contains(t, body, "About section updated!")
	assert.Contains(t, body, "Words: 3 | Characters: 16")
	assert.Contains(t, body, "Edit About")
}

func TestAdminUnknownTabRedirects(t *testing.T) {
	s := newWeb(t)
	w := s.get("/admin/nope", s.session())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))
}

func TestAdminMessagesTab(t *testing.T) {
	s := newWeb(t)
	_, err := s.admin.CreateMessage(context.Background(), client.MessageInput{Name: "Ana", Email: "ana@example.com", Message: "Hi"})
	require.NoError(t, err)

	body := s.get("/admin/messages", s.session()).Body.String()
	assert.Contains(t, body, "Messages (1)")
	assert.Contains(t, body, "ana@example.com")
	assert.NotContains(t, body, "+ Add Message")
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/admin", safeNext("/admin"))
	assert.Equal(t, "/", safeNext("https://evil.example"))
	assert.Equal(t, "/", safeNext("//evil.example"))
	assert.Equal(t, "/", safeNext(""))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "DK", initials("Dileep Kakara"))
	assert.Equal(t, "", initials(""))
}
