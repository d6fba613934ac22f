package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dileepkakara/portfolio/internal/formbuilder"
	"github.com/dileepkakara/portfolio/internal/forms"
)

// SignatureHeader carries the hex HMAC-SHA256 of a form descriptor body.
const SignatureHeader = "X-Form-Signature"

type FormController struct {
	HMACSecret string
}

type formResponse struct {
	Name   string              `json:"name"`
	Title  string              `json:"title"`
	Fields []formbuilder.Field `json:"fields"`
}

// Get serves a descriptor table so other clients can build the same form.
func (fc *FormController) Get(c *gin.Context) {
	fields, ok := forms.Lookup(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
		return
	}
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(c.Param("name"))), "s")
	fc.respondWithSignature(c, formResponse{
		Name:   name,
		Title:  cases.Title(language.English).String(name),
		Fields: fields,
	})
}

func (fc *FormController) respondWithSignature(c *gin.Context, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode payload"})
		return
	}
	if sig := Sign(fc.HMACSecret, b); sig != "" {
		c.Header(SignatureHeader, sig)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

// Sign returns the hex HMAC-SHA256 of body, or "" when secret is blank.
func Sign(secret string, body []byte) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
