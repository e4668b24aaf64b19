package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/max-shi/game-api-server/internal/middleware"
	"github.com/max-shi/game-api-server/internal/service"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/:game_id/wishlist", requireAuth, h.AddWishlist)
	rg.DELETE("/:game_id/wishlist", requireAuth, h.RemoveWishlist)
	rg.POST("/:game_id/owned", requireAuth, h.AddOwned)
	rg.DELETE("/:game_id/owned", requireAuth, h.RemoveOwned)
}

// libraryAction wraps the shared parse/auth/dispatch shape of the four
// wishlist/owned toggles.
func (h *LibraryHandler) libraryAction(c *gin.Context, action func(ctx context.Context, userID, gameID int64) error) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := action(ctx, user.ID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrOwnGameAction),
			errors.Is(err, service.ErrAlreadyWishlisted),
			errors.Is(err, service.ErrAlreadyOwned),
			errors.Is(err, service.ErrNotWishlisted),
			errors.Is(err, service.ErrNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *LibraryHandler) AddWishlist(c *gin.Context) {
	h.libraryAction(c, h.svc.AddWishlist)
}

func (h *LibraryHandler) RemoveWishlist(c *gin.Context) {
	h.libraryAction(c, h.svc.RemoveWishlist)
}

func (h *LibraryHandler) AddOwned(c *gin.Context) {
	h.libraryAction(c, h.svc.AddOwned)
}

func (h *LibraryHandler) RemoveOwned(c *gin.Context) {
	h.libraryAction(c, h.svc.RemoveOwned)
}
