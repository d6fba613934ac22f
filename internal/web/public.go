package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/site"
)

const contactFailed = "Failed to send message. Please try again."

type contactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type indexView struct {
	Theme   string
	Toggle  toggle
	Content site.Content
	Year    int
	Contact contactForm
	Success string
	Error   string
}

func (s *Server) loadIndex(c *gin.Context) indexView {
	return indexView{
		Theme:   theme(c),
		Toggle:  toggleFor(c, "/"),
		Content: site.Load(c.Request.Context(), s.api, s.log),
		Year:    time.Now().Year(),
	}
}

func (s *Server) index(c *gin.Context) {
	if _, err := c.Cookie(cookieTracked); err != nil {
		s.setCookie(c, cookieTracked, "1", 0)
		s.trackVisit(c.Request.Context())
	}
	c.HTML(http.StatusOK, "index.html", s.loadIndex(c))
}

func (s *Server) contact(c *gin.Context) {
	form := contactForm{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Phone:   strings.TrimSpace(c.PostForm("phone")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	_, err := s.api.CreateMessage(c.Request.Context(), client.MessageInput{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
	})

	view := s.loadIndex(c)
	if err != nil {
		s.log.Warn("send contact message", zap.Error(err))
		view.Contact = form
		view.Error = contactFailed
		c.HTML(http.StatusBadGateway, "index.html", view)
		return
	}
	view.Success = "Thank you, " + form.Name + "! Your message has been sent successfully. I'll get back to you soon at " + form.Email + "."
	c.HTML(http.StatusOK, "index.html", view)
}

// toggleTheme flips the theme, or sets it from ?mode=, then returns to ?next=.
func (s *Server) toggleTheme(c *gin.Context) {
	next := themeLight
	switch c.Query("mode") {
	case themeLight, themeDark:
		next = c.Query("mode")
	default:
		if theme(c) == themeLight {
			next = themeDark
		}
	}
	s.setCookie(c, cookieTheme, next, int((365 * 24 * time.Hour).Seconds()))
	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}
