// Package httpapi exposes the service layer over a gin HTTP API: public
// auth and content routes, token-protected routes, and the JSON error
// surface. Handlers translate sentinel errors from the services into HTTP
// statuses; internal details never leak into responses.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dkravets/libshelf/internal/logging"
	"github.com/dkravets/libshelf/internal/server/config"
	"github.com/dkravets/libshelf/internal/server/models"
	"github.com/dkravets/libshelf/internal/server/services"
)

// UserService is the slice of the auth service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, params services.RegisterParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, *models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// ContentService is the slice of the content service the HTTP layer needs.
type ContentService interface {
	ListBooks(ctx context.Context) ([]*models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	ListNotices(ctx context.Context) ([]*models.Notice, error)
	CreateNotice(ctx context.Context, notice *models.Notice) (*models.Notice, error)
	ListMessages(ctx context.Context) ([]*models.Message, error)
	LeaveMessage(ctx context.Context, message *models.Message) (*models.Message, error)
}

// Mailer sends the outbound test email.
type Mailer interface {
	SendTestMail(ctx context.Context) (string, error)
}

// Server holds the HTTP handler dependencies.
type Server struct {
	cfg     *config.Config
	logger  logging.Logger
	users   UserService
	content ContentService
	mail    Mailer
}

// NewServer constructs the HTTP server façade over the given services.
func NewServer(cfg *config.Config, logger logging.Logger, users UserService, content ContentService, mail Mailer) *Server {
	return &Server{cfg: cfg, logger: logger, users: users, content: content, mail: mail}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(s.cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", s.handleRegister)
			authRoutes.POST("/login", s.handleLogin)
		}
		api.POST("/token/refresh", s.handleRefresh)

		api.GET("/books", s.handleListBooks)
		api.GET("/noticeboard", s.handleListNotices)
		api.POST("/messages", s.handleLeaveMessage)

		protected := api.Group("", RequireAuth([]byte(s.cfg.SecretKey)))
		{
			protected.GET("/dashboard", s.handleDashboard)
			protected.POST("/books", s.handleCreateBook)
			protected.POST("/noticeboard", s.handleCreateNotice)
			protected.GET("/messages", s.handleListMessages)
			protected.POST("/send-email", s.handleSendTestEmail)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "libshelf"})
}
