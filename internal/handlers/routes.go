package handlers

import (
	"time"

	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appjwt "github.com/codementor/codementor-api/pkg/jwt"
)

// Handlers bundles everything the router needs
type Handlers struct {
	Auth         *AuthHandler
	App          *AppHandler
	Mentors      *MentorHandler
	Sessions     *SessionHandler
	WarRoom      *WarRoomHandler
	Requests     *RequestHandler
	Problems     *ProblemHandler
	Profile      *ProfileHandler
	Gamification *GamificationHandler
	Reports      *ReportHandler
	Toasts       *ToastHandler
	Health       *HealthHandler
	Admin        *AdminHandler
}

// RouterConfig carries the cross-cutting route settings
type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	MaxBodySizeMB  int
	GeneralRPS     float64
	GeneralBurst   int
	Tokens         *appjwt.TokenManager
	CookieName     string
}

// NewRouter builds the gin engine with the full middleware stack and
// all routes registered.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middleware.ObservabilityMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.BodySizeLimitMiddleware(cfg.MaxBodySizeMB))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	general := middleware.NewIPRateLimiter(cfg.GeneralRPS, cfg.GeneralBurst)
	// Auth and AI endpoints get tighter budgets than the general API
	authLimiter := middleware.NewIPRateLimiter(1, 5)
	aiLimiter := middleware.NewIPRateLimiter(0.5, 3)

	r.GET("/api/healthcheck", h.Health.Check)
	r.GET("/api/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware(general))

	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(authLimiter))
	{
		auth.POST("/register", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
	}

	session := v1.Group("")
	session.Use(middleware.AppSessionMiddleware(cfg.Tokens, cfg.CookieName))
	{
		session.POST("/auth/logout", h.Auth.Logout)
		session.GET("/auth/session", h.Auth.SessionInfo)

		session.GET("/app/state", h.App.GetState)
		session.POST("/app/navigate", h.App.Navigate)
		session.POST("/app/onboarding", h.App.Onboarding)

		session.GET("/mentors", h.Mentors.List)
		session.POST("/mentors/match", middleware.RateLimitMiddleware(aiLimiter), h.Mentors.Match)

		session.GET("/sessions", h.Sessions.List)
		session.POST("/sessions/:id/join", h.Sessions.Join)

		session.GET("/warroom", h.WarRoom.Get)
		session.POST("/warroom/chat", h.WarRoom.Chat)
		session.POST("/warroom/code", h.WarRoom.Code)
		session.POST("/warroom/run", middleware.RateLimitMiddleware(aiLimiter), h.WarRoom.Run)
		session.POST("/warroom/media", h.WarRoom.Media)
		session.POST("/warroom/close", h.WarRoom.BeginClose)
		session.POST("/warroom/feedback", h.WarRoom.Feedback)

		session.GET("/requests", h.Requests.List)
		session.POST("/requests/:id/status", h.Requests.UpdateStatus)

		session.GET("/problems", h.Problems.List)
		session.GET("/problems/:id", h.Problems.Get)
		session.POST("/problems/:id/solution", middleware.RateLimitMiddleware(aiLimiter), h.Problems.SubmitSolution)

		session.GET("/availability", h.Gamification.TimeSlots)
		session.POST("/availability", h.Gamification.SaveAvailability)
		session.GET("/gamification", h.Gamification.Summary)

		session.GET("/reports", h.Reports.Metrics)
		session.POST("/reports/bug", h.Reports.SubmitBug)

		session.GET("/profile", h.Profile.Get)
		session.POST("/profile", h.Profile.Update)
		session.POST("/profile/picture", h.Profile.UploadAvatar)

		session.GET("/toasts", h.Toasts.List)
		session.POST("/toasts/:id/dismiss", h.Toasts.Dismiss)

		admin := session.Group("/admin")
		admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
		{
			admin.POST("/storage/clear", h.Admin.ClearStorage)
		}
	}

	return r
}
