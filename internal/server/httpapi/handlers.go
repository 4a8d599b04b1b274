package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
)

// currentUser returns the user the auth middleware resolved. Handlers
// behind authMiddleware may assume it is present.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(userKey).(*models.User)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrValidation
	}
	return id, nil
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrValidation)
		return
	}

	res, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, authResponse{
		Message: "registration successful",
		Token:   res.Token,
		User:    toUserPayload(res.User),
	})
}

func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrValidation)
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Message: "login successful",
		Token:   res.Token,
		User:    toUserPayload(res.User),
	})
}

func (s *Server) meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": toUserPayload(currentUser(c))})
}

func (s *Server) listCharactersHandler(c *gin.Context) {
	chars, err := s.characters.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chars)
}

func (s *Server) getCharacterHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.writeError(c, err)
		return
	}

	ch, err := s.characters.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (s *Server) characterPortraitHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.writeError(c, err)
		return
	}

	url, err := s.characters.PortraitURL(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) addFavoriteHandler(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrValidation)
		return
	}

	user := currentUser(c)
	created, err := s.favorites.Add(c.Request.Context(), user.ID, req.CharacterID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	msg := "already a favorite"
	if created {
		msg = "favorite added"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *Server) removeFavoriteHandler(c *gin.Context) {
	id, err := pathID(c, "characterId")
	if err != nil {
		s.writeError(c, err)
		return
	}

	user := currentUser(c)
	removed, err := s.favorites.Remove(c.Request.Context(), user.ID, id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	msg := "was not a favorite"
	if removed {
		msg = "favorite removed"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *Server) listFavoritesHandler(c *gin.Context) {
	user := currentUser(c)
	ids, err := s.favorites.List(c.Request.Context(), user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": ids})
}

func (s *Server) checkFavoriteHandler(c *gin.Context) {
	id, err := pathID(c, "characterId")
	if err != nil {
		s.writeError(c, err)
		return
	}

	user := currentUser(c)
	exists, err := s.favorites.Check(c.Request.Context(), user.ID, id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": exists})
}
