package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/max-shi/game-api-server/internal/middleware"
	"github.com/max-shi/game-api-server/internal/service"
	"github.com/max-shi/game-api-server/internal/storage"
)

type ImageHandler struct {
	svc         service.ImageService
	maxBodySize int64
}

func NewImageHandler(svc service.ImageService, maxBodySize int64) *ImageHandler {
	return &ImageHandler{svc: svc, maxBodySize: maxBodySize}
}

func (h *ImageHandler) RegisterUserRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/:user_id/image", h.GetUserImage)
	rg.PUT("/:user_id/image", requireAuth, h.SetUserImage)
	rg.DELETE("/:user_id/image", requireAuth, h.DeleteUserImage)
}

func (h *ImageHandler) RegisterGameRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/:game_id/image", h.GetGameImage)
	rg.PUT("/:game_id/image", requireAuth, h.SetGameImage)
	rg.DELETE("/:game_id/image", requireAuth, h.DeleteGameImage)
}

func (h *ImageHandler) GetUserImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	data, contentType, err := h.svc.GetUserImage(ctx, id)
	if err != nil {
		h.respondImageError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *ImageHandler) SetUserImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if user.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot set another user's image"})
		return
	}

	contentType, data, ok := h.readImageBody(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.SetUserImage(ctx, id, contentType, data)
	if err != nil {
		h.respondImageError(c, err)
		return
	}
	if created {
		c.Status(http.StatusCreated)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ImageHandler) DeleteUserImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if user.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot delete another user's image"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.DeleteUserImage(ctx, id); err != nil {
		h.respondImageError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ImageHandler) GetGameImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	data, contentType, err := h.svc.GetGameImage(ctx, id)
	if err != nil {
		h.respondImageError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *ImageHandler) SetGameImage(c *gin.Context) {
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

	contentType, data, bodyOK := h.readImageBody(c)
	if !bodyOK {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.SetGameImage(ctx, user.ID, id, contentType, data)
	if err != nil {
		h.respondImageError(c, err)
		return
	}
	if created {
		c.Status(http.StatusCreated)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ImageHandler) DeleteGameImage(c *gin.Context) {
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

	if err := h.svc.DeleteGameImage(ctx, user.ID, id); err != nil {
		h.respondImageError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// readImageBody validates the Content-Type header against the allow list and
// reads the raw body up to the configured size cap.
func (h *ImageHandler) readImageBody(c *gin.Context) (string, []byte, bool) {
	contentType := strings.TrimSpace(strings.Split(c.GetHeader("Content-Type"), ";")[0])
	if contentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing Content-Type header"})
		return "", nil, false
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodySize)
	data, err := io.ReadAll(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return "", nil, false
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty image body"})
		return "", nil, false
	}
	return contentType, data, true
}

func (h *ImageHandler) respondImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrNoImage):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrUnsupportedContentType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotCreator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
