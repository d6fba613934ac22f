package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/controllers"
	"github.com/dileepkakara/portfolio/internal/middleware"
	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/ws"
)

// NewRouter builds the API engine with logging, recovery and CORS.
func NewRouter(db *gorm.DB, cfg *config.Config, hubs *ws.Hubs, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log.Named("http")))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	Register(r, db, cfg, hubs, log)
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{controllers.SignatureHeader}
	c.MaxAge = 12 * time.Hour
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, hubs *ws.Hubs, log *zap.Logger) {
	authCfg := middleware.AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		JWTExpiresIn: cfg.JWTExpiresIn,
	}
	authCtrl := &controllers.AuthController{DB: db, Auth: authCfg, AllowRegistration: cfg.AllowRegistration, Log: log}
	projectCtrl := &controllers.ProjectController{DB: db, Log: log}
	skillCtrl := &controllers.SkillController{DB: db, Log: log}
	aboutCtrl := &controllers.AboutController{DB: db, Log: log}
	messageCtrl := &controllers.MessageController{DB: db, Hubs: hubs, Log: log}
	visitorCtrl := &controllers.VisitorController{DB: db, Log: log}
	formCtrl := &controllers.FormController{HMACSecret: cfg.FormsHMACSecret}

	api := r.Group("/api")

	// Public
	api.GET("/health", health(db))
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/register", authCtrl.Register)
	api.GET("/about", aboutCtrl.Get)
	api.GET("/skills", skillCtrl.List)
	api.GET("/projects", projectCtrl.List)
	api.POST("/messages", messageCtrl.Create)
	api.GET("/visitors", visitorCtrl.Track)
	api.GET("/visitors/count", visitorCtrl.Count)
	api.GET("/forms/:name", formCtrl.Get)

	// Admin
	admin := api.Group("", middleware.AuthMiddleware(db, authCfg), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/auth/me", authCtrl.Me)
		admin.POST("/auth/logout", authCtrl.Logout)

		admin.PUT("/about", aboutCtrl.Put)

		admin.POST("/skills", skillCtrl.Create)
		admin.PUT("/skills/:id", skillCtrl.Update)
		admin.DELETE("/skills/:id", skillCtrl.Delete)

		admin.POST("/projects", projectCtrl.Create)
		admin.PUT("/projects/:id", projectCtrl.Update)
		admin.DELETE("/projects/:id", projectCtrl.Delete)

		admin.GET("/messages", messageCtrl.List)
		admin.DELETE("/messages/:id", messageCtrl.Delete)
	}

	// The stream also accepts ?access_token= for browser websockets.
	if hubs != nil {
		streamAuth := authCfg
		streamAuth.AllowQueryToken = true
		api.GET("/messages/stream",
			middleware.AuthMiddleware(db, streamAuth),
			middleware.RequireRoles(models.RoleAdmin),
			ws.MessagesHandler(hubs.Messages))
	}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
