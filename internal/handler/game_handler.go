package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/middleware"
	"github.com/max-shi/game-api-server/internal/repository"
	"github.com/max-shi/game-api-server/internal/service"
)

type GameHandler struct {
	svc service.GameService
}

func NewGameHandler(svc service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

func (h *GameHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.GET("", optionalAuth, h.Search)
	rg.POST("", requireAuth, h.Create)
	rg.GET("/genres", h.Genres)
	rg.GET("/platforms", h.Platforms)
	rg.GET("/:game_id", h.Get)
	rg.PATCH("/:game_id", requireAuth, h.Update)
	rg.DELETE("/:game_id", requireAuth, h.Delete)
}

// Search handles GET /games with the full filter/sort/pagination parameter set.
func (h *GameHandler) Search(c *gin.Context) {
	var filters dto.GameSearchFilters

	filters.Q = strings.TrimSpace(c.Query("q"))

	genreIDs, ok := parseIDList(c, "genreIds")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genreIds parameter"})
		return
	}
	filters.GenreIDs = genreIDs

	platformIDs, ok := parseIDList(c, "platformIds")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platformIds parameter"})
		return
	}
	filters.PlatformIDs = platformIDs

	if priceStr := strings.TrimSpace(c.Query("price")); priceStr != "" {
		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price parameter"})
			return
		}
		filters.MaxPrice = &price
	}

	if creatorStr := strings.TrimSpace(c.Query("creatorId")); creatorStr != "" {
		creatorID, err := strconv.ParseInt(creatorStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creatorId parameter"})
			return
		}
		filters.CreatorID = &creatorID
	}

	if reviewerStr := strings.TrimSpace(c.Query("reviewerId")); reviewerStr != "" {
		reviewerID, err := strconv.ParseInt(reviewerStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reviewerId parameter"})
			return
		}
		filters.ReviewerID = &reviewerID
	}

	// ownedByMe / wishlistedByMe require an authenticated user
	currentUser, authed := middleware.CurrentUser(c)
	if c.Query("ownedByMe") == "true" {
		if !authed {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required for ownedByMe"})
			return
		}
		filters.OwnedBy = &currentUser.ID
	}
	if c.Query("wishlistedByMe") == "true" {
		if !authed {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required for wishlistedByMe"})
			return
		}
		filters.WishlistedBy = &currentUser.ID
	}

	if sortBy := strings.TrimSpace(c.Query("sortBy")); sortBy != "" {
		if !repository.IsValidGameSort(sortBy) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sortBy parameter"})
			return
		}
		filters.SortBy = sortBy
	}

	if startStr := strings.TrimSpace(c.Query("startIndex")); startStr != "" {
		start, err := strconv.Atoi(startStr)
		if err != nil || start < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex parameter"})
			return
		}
		filters.StartIndex = start
	}

	if countStr := strings.TrimSpace(c.Query("count")); countStr != "" {
		count, err := strconv.Atoi(countStr)
		if err != nil || count < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count parameter"})
			return
		}
		filters.Count = &count
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.svc.Search(ctx, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	detail, err := h.svc.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *GameHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var in dto.CreateGameDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	game, err := h.svc.Create(ctx, user.ID, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound), errors.Is(err, service.ErrInvalidPlatforms):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTitleInUse):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gameId": game.ID})
}

func (h *GameHandler) Update(c *gin.Context) {
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

	var in dto.UpdateGameDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, user.ID, id, in); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotCreator), errors.Is(err, service.ErrTitleInUse):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrGenreNotFound), errors.Is(err, service.ErrInvalidPlatforms):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *GameHandler) Delete(c *gin.Context) {
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

	if err := h.svc.Delete(ctx, user.ID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotCreator), errors.Is(err, service.ErrGameHasReviews):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *GameHandler) Genres(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	genres, err := h.svc.Genres(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *GameHandler) Platforms(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	platforms, err := h.svc.Platforms(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, platforms)
}

// parseIDList accepts repeated parameters (?genreIds=1&genreIds=2) and
// comma-separated lists (?genreIds=1,2). Returns ok=false on a malformed id.
func parseIDList(c *gin.Context, key string) ([]int64, bool) {
	values := c.QueryArray(key)
	var ids []int64
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, false
			}
			ids = append(ids, id)
		}
	}
	return ids, true
}
