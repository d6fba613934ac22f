package web

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/admin"
	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/formbuilder"
	"github.com/dileepkakara/portfolio/internal/models"
)

const (
	adminBase        = "/admin"
	loginFailed      = "Invalid credentials"
	registerFailed   = "Registration failed"
	tokenCookieHours = 7 * 24
)

type loginView struct {
	Theme         string
	Toggle        toggle
	Mode          string
	Error         string
	Email         string
	FullName      string
	AllowRegister bool
}

type tabLink struct {
	Name   string
	Label  string
	Active bool
}

type adminView struct {
	Theme     string
	Toggle    toggle
	Tab       string
	Tabs      []tabLink
	Visitors  int64
	Alert     string
	Notice    string
	Navigator []admin.NavEntry
	Selected  *models.Project
	About     *models.About
	Form      template.HTML
}

type confirmView struct {
	Theme  string
	Prompt string
	Action string
}

func (s *Server) token(c *gin.Context) string {
	v, err := c.Cookie(cookieToken)
	if err != nil {
		return ""
	}
	return v
}

func (s *Server) panel(token string) *admin.Panel {
	return admin.New(s.api.WithToken(token), s.log.Named("admin"), adminBase)
}

func (s *Server) renderLogin(c *gin.Context, status int, v loginView) {
	v.Theme = theme(c)
	v.Toggle = toggleFor(c, adminBase)
	v.AllowRegister = true
	if v.Mode == "" {
		v.Mode = "login"
	}
	c.HTML(status, "login.html", v)
}

func (s *Server) adminHome(c *gin.Context) {
	if s.token(c) == "" {
		mode := "login"
		if c.Query("register") != "" {
			mode = "register"
		}
		s.renderLogin(c, http.StatusOK, loginView{Mode: mode})
		return
	}
	c.Redirect(http.StatusSeeOther, adminBase+"/"+admin.TabProjects)
}

func (s *Server) login(c *gin.Context) {
	email := c.PostForm("email")
	token, err := s.api.Login(c.Request.Context(), email, c.PostForm("password"))
	if err != nil {
		s.log.Info("admin login failed", zap.String("email", email), zap.Error(err))
		s.renderLogin(c, http.StatusUnauthorized, loginView{Error: loginFailed, Email: email})
		return
	}
	s.signIn(c, token)
}

func (s *Server) register(c *gin.Context) {
	fullName, email := c.PostForm("fullName"), c.PostForm("email")
	token, err := s.api.Register(c.Request.Context(), fullName, email, c.PostForm("password"))
	if err != nil {
		msg := client.ServerMessage(err)
		if msg == "" {
			msg = registerFailed
		}
		status := http.StatusBadGateway
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			status = apiErr.Status
		}
		s.renderLogin(c, status, loginView{Mode: "register", Error: msg, Email: email, FullName: fullName})
		return
	}
	s.signIn(c, token)
}

func (s *Server) signIn(c *gin.Context, token string) {
	s.setCookie(c, cookieToken, token, tokenCookieHours*3600)
	c.Redirect(http.StatusSeeOther, adminBase+"/"+admin.TabProjects)
}

func (s *Server) logout(c *gin.Context) {
	if token := s.token(c); token != "" {
		if err := s.api.WithToken(token).Logout(c.Request.Context()); err != nil {
			s.log.Info("revoke admin token", zap.Error(err))
		}
	}
	s.setCookie(c, cookieToken, "", -1)
	c.Redirect(http.StatusSeeOther, adminBase)
}

// requireTab resolves the tab and token, answering the request itself when
// either is unusable.
func (s *Server) requireTab(c *gin.Context) (string, string, bool) {
	token := s.token(c)
	if token == "" {
		c.Redirect(http.StatusSeeOther, adminBase)
		return "", "", false
	}
	tab := c.Param("tab")
	if !admin.ValidTab(tab) {
		c.Redirect(http.StatusSeeOther, adminBase+"/"+admin.TabProjects)
		return "", "", false
	}
	return token, tab, true
}

func (s *Server) adminTab(c *gin.Context) {
	token, tab, ok := s.requireTab(c)
	if !ok {
		return
	}
	p := s.panel(token)
	p.RefreshAll(c.Request.Context())

	switch {
	case c.Query("new") != "":
		_ = p.OpenNew(tab)
	case c.Query("edit") != "":
		if found, _ := p.OpenEdit(tab, c.Query("edit")); !found {
			s.log.Debug("edit target not found", zap.String("tab", tab), zap.String("id", c.Query("edit")))
		}
	case c.Query("view") != "":
		_, _ = p.View(tab, c.Query("view"))
	}
	if id := c.Query("project"); id != "" {
		p.SelectProject(id)
	}

	notice := ""
	if c.Query("saved") != "" && tab == admin.TabAbout {
		notice = admin.NoticeAboutSaved
	}
	s.renderAdmin(c, http.StatusOK, p, tab, notice)
}

func (s *Server) adminSave(c *gin.Context) {
	token, tab, ok := s.requireTab(c)
	if !ok {
		return
	}
	p := s.panel(token)
	p.RefreshAll(c.Request.Context())

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad form")
		return
	}
	err := p.Save(c.Request.Context(), tab, c.Request.PostForm)
	switch {
	case err == nil:
		target := adminBase + "/" + tab
		if tab == admin.TabAbout {
			target += "?" + url.Values{"saved": {"1"}}.Encode()
		}
		c.Redirect(http.StatusSeeOther, target)
	case errors.Is(err, formbuilder.ErrRequired):
		s.renderAdmin(c, http.StatusUnprocessableEntity, p, tab, "")
	case errors.Is(err, formbuilder.ErrReadOnly):
		c.Redirect(http.StatusSeeOther, adminBase+"/"+tab)
	default:
		s.renderAdmin(c, http.StatusBadGateway, p, tab, "")
	}
}

func (s *Server) confirmDelete(c *gin.Context) {
	token, tab, ok := s.requireTab(c)
	if !ok {
		return
	}
	b, err := s.panel(token).Builder(tab)
	if err != nil || !b.CanDelete() {
		c.Redirect(http.StatusSeeOther, adminBase+"/"+tab)
		return
	}
	c.HTML(http.StatusOK, "confirm.html", confirmView{
		Theme:  theme(c),
		Prompt: b.DeletePrompt(),
		Action: adminBase + "/" + tab + "/" + url.PathEscape(c.Param("id")) + "/delete",
	})
}

func (s *Server) adminDelete(c *gin.Context) {
	token, tab, ok := s.requireTab(c)
	if !ok {
		return
	}
	p := s.panel(token)
	confirmed := c.PostForm("confirm") == "yes"
	_, err := p.Delete(c.Request.Context(), tab, c.Param("id"), formbuilder.ConfirmFunc(func(string) bool {
		return confirmed
	}))
	if err != nil && !errors.Is(err, formbuilder.ErrReadOnly) {
		p.RefreshAll(c.Request.Context())
		s.renderAdmin(c, http.StatusBadGateway, p, tab, "")
		return
	}
	c.Redirect(http.StatusSeeOther, adminBase+"/"+tab)
}

func (s *Server) renderAdmin(c *gin.Context, status int, p *admin.Panel, tab, notice string) {
	form, err := p.FormHTML(tab)
	if err != nil {
		s.log.Error("render admin form", zap.String("tab", tab), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	if notice == "" {
		notice = p.Notice()
	}
	c.HTML(status, "admin.html", adminView{
		Theme:     theme(c),
		Toggle:    toggleFor(c, adminBase+"/"+tab),
		Tab:       tab,
		Tabs:      tabLinks(p, tab),
		Visitors:  p.VisitorCount(),
		Alert:     p.Alert(),
		Notice:    notice,
		Navigator: p.Navigator(),
		Selected:  p.SelectedProject(),
		About:     p.About(),
		Form:      form,
	})
}

var tabLabels = map[string]string{
	admin.TabProjects: "📁 Projects",
	admin.TabSkills:   "🎯 Skills",
	admin.TabAbout:    "👤 About",
	admin.TabMessages: "💬 Messages",
}

func tabLinks(p *admin.Panel, active string) []tabLink {
	out := make([]tabLink, 0, len(admin.Tabs))
	for _, tab := range admin.Tabs {
		label := tabLabels[tab]
		if tab != admin.TabAbout {
			label += " (" + strconv.Itoa(p.Count(tab)) + ")"
		}
		out = append(out, tabLink{Name: tab, Label: label, Active: tab == active})
	}
	return out
}
