package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dileepkakara/portfolio/internal/middleware"
	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/utils"
)

type AuthController struct {
	DB                *gorm.DB
	Auth              middleware.AuthConfig
	AllowRegistration bool
	Log               *zap.Logger
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (a *AuthController) Register(c *gin.Context) {
	if !a.AllowRegistration {
		c.JSON(http.StatusForbidden, gin.H{"error": "registration is disabled"})
		return
	}
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		storeError(c, nopIfNil(a.Log), err, "")
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	pw, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = email
	}
	user := models.User{
		FullName: fullName,
		Email:    email,
		Password: pw,
		Role:     models.RoleAdmin,
		Active:   true,
	}
	if err := a.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		storeError(c, nopIfNil(a.Log), err, "")
		return
	}

	token, err := middleware.IssueToken(user, a.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	nopIfNil(a.Log).Info("admin registered", zap.String("email", user.Email))
	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !user.Active || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.IssueToken(user, a.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (a *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":    user.UserID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"role":       user.Role,
		"active":     user.Active,
		"created_at": user.CreatedAt,
	})
}

// Logout revokes the presented token until it expires and purges revocations
// that have already expired.
func (a *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	claims, _ := c.Get(middleware.ContextClaims)
	cl, ok := claims.(*middleware.Claims)
	if token == "" || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now().UTC()
	expires := now.Add(a.Auth.JWTExpiresIn)
	if cl.ExpiresAt != nil {
		expires = cl.ExpiresAt.Time
	}
	revoked := models.RevokedToken{TokenHash: utils.SHA256Hex(token), UserID: cl.UserID, ExpiresAt: expires}
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at < ?", now).Delete(&models.RevokedToken{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&revoked).Error
	})
	if err != nil {
		storeError(c, nopIfNil(a.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
