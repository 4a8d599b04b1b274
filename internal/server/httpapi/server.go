// Package httpapi exposes the TeyvatDex services over HTTP with gin.
// It owns routing, middleware, request/response shapes, and the single
// place where domain errors become status codes.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teyvatdex/teyvatdex/internal/logging"
	"github.com/teyvatdex/teyvatdex/internal/server/config"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
	"github.com/teyvatdex/teyvatdex/internal/server/services"
)

// UserService is the authentication surface the handlers need.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Identify(ctx context.Context, token string) (*models.User, error)
}

// FavoriteService is the favorites surface the handlers need.
type FavoriteService interface {
	Add(ctx context.Context, userID, characterID int64) (bool, error)
	Remove(ctx context.Context, userID, characterID int64) (bool, error)
	Check(ctx context.Context, userID, characterID int64) (bool, error)
	List(ctx context.Context, userID int64) ([]int64, error)
}

// CharacterService is the catalog surface the handlers need.
type CharacterService interface {
	List(ctx context.Context) ([]*models.Character, error)
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	PortraitURL(ctx context.Context, id int64) (string, error)
}

type Server struct {
	address    string
	router     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
	devMode    bool

	users      UserService
	favorites  FavoriteService
	characters CharacterService
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService, fs FavoriteService, cs CharacterService) (*Server, error) {
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	s := &Server{
		address:    cfg.ServerAddress,
		router:     router,
		logger:     l.With("module", "http_server"),
		devMode:    cfg.DevMode,
		users:      us,
		favorites:  fs,
		characters: cs,
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware(), s.accessLogMiddleware(), gin.Recovery(), corsMiddleware())

	s.router.GET("/health", s.healthHandler)

	auth := s.router.Group("/auth")
	auth.Use(rateLimitMiddleware(authRateLimit, authRateBurst))
	auth.POST("/register", s.registerHandler)
	auth.POST("/login", s.loginHandler)
	auth.GET("/me", s.authMiddleware(), s.meHandler)

	characters := s.router.Group("/characters")
	characters.GET("", s.listCharactersHandler)
	characters.GET("/:id", s.getCharacterHandler)
	characters.GET("/:id/portrait", s.characterPortraitHandler)

	favorites := s.router.Group("/favorites")
	favorites.Use(s.authMiddleware())
	favorites.POST("", s.addFavoriteHandler)
	favorites.GET("", s.listFavoritesHandler)
	favorites.GET("/:characterId", s.checkFavoriteHandler)
	favorites.DELETE("/:characterId", s.removeFavoriteHandler)
}

// Run serves until ctx is cancelled, then shuts the listener down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	s.httpServer = &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
