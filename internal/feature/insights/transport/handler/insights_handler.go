// Package handler はinsightsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vidshare_backend/internal/api"
	"vidshare_backend/internal/feature/insights/domain/entity"
)

// InsightsUsecase はサムネイル分析・タイトル提案のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InsightsUsecase interface {
	AnalyzeThumbnail(ctx context.Context, imageData []byte) ([]entity.ThumbnailLabel, error)
	SuggestTitle(ctx context.Context, description string) (*entity.TitleSuggestion, error)
}

// InsightsHandler はサムネイル分析・タイトル提案のHTTPリクエストを処理します。
type InsightsHandler struct {
	uc InsightsUsecase
}

// NewInsightsHandler はInsightsHandlerの新しいインスタンスを生成します。
func NewInsightsHandler(uc InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// AnalyzeThumbnail はサムネイル画像をアップロードしてラベルを検出します。
//
// エンドポイント: POST /v1/insights/thumbnail
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *InsightsHandler) AnalyzeThumbnail(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	labels, err := h.uc.AnalyzeThumbnail(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("ラベル検出に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "ラベル検出に失敗しました"})
		return
	}

	out := make([]api.ThumbnailLabelResponse, 0, len(labels))
	for _, l := range labels {
		out = append(out, api.ThumbnailLabelResponse{
			Name:       l.Name,
			Confidence: l.Confidence,
		})
	}
	c.JSON(http.StatusOK, api.ThumbnailInsightsResponse{Labels: out})
}

// SuggestTitle は説明文からタイトル案を生成します。
//
// エンドポイント: POST /v1/insights/title
func (h *InsightsHandler) SuggestTitle(c *gin.Context) {
	var req api.TitleSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "description is required"})
		return
	}

	suggestion, err := h.uc.SuggestTitle(c.Request.Context(), req.Description)
	if err != nil {
		slog.Error("タイトル提案に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "タイトル提案に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.TitleSuggestionResponse{Suggestion: suggestion.Suggestion})
}
