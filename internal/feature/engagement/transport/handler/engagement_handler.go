// Package handler provides the HTTP handlers for the engagement feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vidshare_backend/internal/api"
	"vidshare_backend/internal/feature/engagement/domain/entity"
	"vidshare_backend/internal/feature/engagement/usecase"
	"vidshare_backend/internal/platform/sessionmw"
)

// EngagementUsecase defines the engagement operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type EngagementUsecase interface {
	ToggleLike(ctx context.Context, videoID, userID string) (bool, int64, error)
	AddComment(ctx context.Context, videoID, userID, text string) (*entity.Comment, error)
}

// EngagementHandler handles the like and comment API routes. Both sit behind
// the required-auth session gate, so a caller identity is always present.
type EngagementHandler struct {
	engagement EngagementUsecase
}

// NewEngagementHandler creates a new instance of EngagementHandler.
func NewEngagementHandler(engagement EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

// ToggleLike handles POST /like/:id. One call flips the caller's like state
// for the video and returns the post-toggle total.
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString(sessionmw.ContextUserID)

	liked, total, err := h.engagement.ToggleLike(c.Request.Context(), videoID, userID)
	if err != nil {
		slog.Error("toggle like failed", "video_id", videoID, "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, api.LikeResponse{Likes: total, Liked: liked})
}

// AddComment handles POST /comment/:id. Empty or whitespace-only text is a
// 400; success returns {"success": true} and the comment is immediately
// visible to listings.
func (h *EngagementHandler) AddComment(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString(sessionmw.ContextUserID)

	var req api.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if _, err := h.engagement.AddComment(c.Request.Context(), videoID, userID, req.Text); err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "text is required"})
			return
		}
		slog.Error("add comment failed", "video_id", videoID, "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
