// Package web serves the public portfolio page and the admin panel. All
// content goes through the REST API client.
package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/middleware"
	"github.com/dileepkakara/portfolio/internal/site"
)

const (
	cookieToken   = "adminToken"
	cookieTheme   = "theme"
	cookieTracked = "visitor_tracked"

	themeLight = "light"
	themeDark  = "dark"

	trackTimeout = 5 * time.Second
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"markdown": site.Markdown,
	"join":     strings.Join,
	"initials": initials,
	"words":    func(s string) int { return len(strings.Fields(s)) },
	"chars":    utf8.RuneCountInString,
	"delay":    func(i int) string { return strconv.FormatFloat(float64(i)*0.1, 'f', 1, 64) },
	"loop":     copies,
}).ParseFS(templatesFS, "templates/*.html"))

// Server is the frontend. It keeps no content of its own.
type Server struct {
	cfg *config.WebConfig
	api *client.Client
	log *zap.Logger

	tracking sync.WaitGroup
}

func New(cfg *config.WebConfig, api *client.Client, log *zap.Logger) *Server {
	return &Server{cfg: cfg, api: api, log: log}
}

// Handler builds the gin engine with every page route.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(s.log), middleware.RequestLogger(s.log.Named("http")))
	r.SetHTMLTemplate(pages)

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.index)
	r.POST("/contact", s.contact)
	r.GET("/theme", s.toggleTheme)

	r.GET("/admin", s.adminHome)
	r.POST("/admin/login", s.login)
	r.POST("/admin/register", s.register)
	r.POST("/admin/logout", s.logout)
	r.GET("/admin/:tab", s.adminTab)
	r.POST("/admin/:tab/save", s.adminSave)
	r.GET("/admin/:tab/:id/delete", s.confirmDelete)
	r.POST("/admin/:tab/:id/delete", s.adminDelete)

	return r
}

// Wait blocks until background visit tracking has finished.
func (s *Server) Wait() { s.tracking.Wait() }

// trackVisit counts the visit without holding up the page.
func (s *Server) trackVisit(parent context.Context) {
	s.tracking.Add(1)
	go func() {
		defer s.tracking.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), trackTimeout)
		defer cancel()
		if _, err := s.api.TrackVisit(ctx); err != nil {
			s.log.Warn("track visit", zap.Error(err))
		}
	}()
}

func (s *Server) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.cfg.CookieSecure, true)
}

func theme(c *gin.Context) string {
	if v, _ := c.Cookie(cookieTheme); v == themeLight {
		return themeLight
	}
	return themeDark
}

// toggle feeds the theme switch partial.
type toggle struct {
	Theme string
	Next  string
}

func toggleFor(c *gin.Context, next string) toggle {
	return toggle{Theme: theme(c), Next: next}
}

// copies yields n flags where only the first is false, for rendering a
// list again as aria-hidden duplicates.
func copies(n int) []bool {
	out := make([]bool, n)
	for i := 1; i < n; i++ {
		out[i] = true
	}
	return out
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// safeNext keeps redirects on this host.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
