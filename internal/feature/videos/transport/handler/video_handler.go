// Package handler provides the HTTP handlers for the videos feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vidshare_backend/internal/api"
	engentity "vidshare_backend/internal/feature/engagement/domain/entity"
	"vidshare_backend/internal/feature/videos/domain/entity"
	"vidshare_backend/internal/feature/videos/usecase"
	"vidshare_backend/internal/platform/sessionmw"
)

// VideosUsecase defines the video operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type VideosUsecase interface {
	Upload(ctx context.Context, ownerID, title, description string, private bool, filename string, content io.Reader) (*entity.Video, error)
	View(ctx context.Context, id, callerID string) (*entity.Video, error)
	ListPublic(ctx context.Context) ([]entity.Video, error)
	OpenContent(ctx context.Context, name string) (io.ReadCloser, error)
}

// EngagementLedger is the slice of the engagement feature the watch page
// needs: counting the authorized view and materializing likes and comments.
// Every call happens strictly after access control has allowed the view.
type EngagementLedger interface {
	RecordView(ctx context.Context, videoID string) (int64, error)
	CountLikes(ctx context.Context, videoID string) (int64, error)
	ListComments(ctx context.Context, videoID string) ([]engentity.Comment, error)
}

// VideoHandler handles the feed, watch page, upload and raw content routes.
type VideoHandler struct {
	videos     VideosUsecase
	engagement EngagementLedger
}

// NewVideoHandler creates a new instance of VideoHandler.
func NewVideoHandler(videos VideosUsecase, engagement EngagementLedger) *VideoHandler {
	return &VideoHandler{videos: videos, engagement: engagement}
}

// toVideoResponse maps a domain video to its JSON shape.
func toVideoResponse(v *entity.Video) api.VideoResponse {
	return api.VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		OwnerID:     v.OwnerID,
		Filename:    v.Filename,
		Private:     v.Private,
		Views:       v.Views,
		UploadDate:  v.CreatedAt.Format(time.RFC3339),
	}
}

// Feed handles GET / and returns the public feed, newest first.
func (h *VideoHandler) Feed(c *gin.Context) {
	videos, err := h.videos.ListPublic(c.Request.Context())
	if err != nil {
		slog.Error("failed to list public videos", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load feed"})
		return
	}

	out := make([]api.VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, toVideoResponse(&videos[i]))
	}
	c.JSON(http.StatusOK, api.FeedResponse{Videos: out})
}

// Watch handles GET /video/:id.
//
// The request flows identity -> access control -> engagement ledger: the
// session middleware has already resolved the optional caller, View applies
// the privacy gate, and only an allowed request reaches RecordView and the
// likes/comments reads. A denied request short-circuits before any of those.
//
// This is a page-class route: a private video with no caller redirects to
// the login prompt instead of returning 401.
func (h *VideoHandler) Watch(c *gin.Context) {
	videoID := c.Param("id")
	callerID := c.GetString(sessionmw.ContextUserID)
	ctx := c.Request.Context()

	video, err := h.videos.View(ctx, videoID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "video not found"})
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.Redirect(http.StatusFound, sessionmw.LoginRedirectTarget)
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "access forbidden"})
		default:
			slog.Error("failed to load video", "video_id", videoID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load video"})
		}
		return
	}

	views, err := h.engagement.RecordView(ctx, videoID)
	if err != nil {
		slog.Error("failed to record view", "video_id", videoID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load video"})
		return
	}
	video.Views = views

	likes, err := h.engagement.CountLikes(ctx, videoID)
	if err != nil {
		slog.Error("failed to count likes", "video_id", videoID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load video"})
		return
	}

	comments, err := h.engagement.ListComments(ctx, videoID)
	if err != nil {
		slog.Error("failed to list comments", "video_id", videoID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load video"})
		return
	}

	outComments := make([]api.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		outComments = append(outComments, api.CommentResponse{
			Text: cm.Text,
			Date: cm.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, api.VideoPageResponse{
		Video:    toVideoResponse(video),
		Likes:    likes,
		Comments: outComments,
	})
}

// Upload handles POST /upload (multipart). The session middleware guarantees
// a caller identity. Responds with a redirect on success, mirroring the
// page-route class.
func (h *VideoHandler) Upload(c *gin.Context) {
	ownerID := c.GetString(sessionmw.ContextUserID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no file selected"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "upload failed"})
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	title := c.PostForm("title")
	description := c.PostForm("description")
	_, private := c.GetPostForm("private")

	video, err := h.videos.Upload(c.Request.Context(), ownerID, title, description, private, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, usecase.ErrNoFile) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no file selected"})
			return
		}
		slog.Error("upload failed", "owner_id", ownerID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "upload failed"})
		return
	}

	slog.Info("video uploaded", "video_id", video.ID, "owner_id", ownerID, "private", video.Private)
	c.Redirect(http.StatusFound, "/")
}

// ServeContent handles GET /video_file/:name and GET /thumbnail/:name,
// streaming raw bytes from the content store.
func (h *VideoHandler) ServeContent(c *gin.Context) {
	name := c.Param("name")
	// Handles are flat names; anything path-like is not a valid handle.
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}

	rc, err := h.videos.OpenContent(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	defer func() {
		if err := rc.Close(); err != nil {
			slog.Warn("failed to close content reader", "name", name, "error", err)
		}
	}()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		slog.Warn("content stream interrupted", "name", name, "error", err)
	}
}
