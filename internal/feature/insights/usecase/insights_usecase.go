// Package usecase はinsightsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"vidshare_backend/internal/feature/insights/domain/entity"
	"vidshare_backend/internal/shared/ratelimiter"
)

const (
	// MaxImageSize はサムネイル画像の最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// TitlePromptTemplate はタイトル提案のプロンプトテンプレートです。
	TitlePromptTemplate = "Suggest one concise, catchy title of at most 70 characters for a video with this description: %s. Reply with the title only."
	// MaxDescriptionLength は説明文の最大文字数（rune数）です。
	MaxDescriptionLength = 2000
)

// ThumbnailLabeler は画像からラベルを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ThumbnailLabeler interface {
	// DetectLabels は画像バイト列からラベルを検出し、検出結果を返します。
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.ThumbnailLabel, error)
}

// TitleSuggester はタイトル提案を生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TitleSuggester interface {
	// Suggest はプロンプトからタイトル案を生成します。
	Suggest(ctx context.Context, prompt string) (string, error)
}

// insightsUsecase はサムネイル分析・タイトル提案のビジネスロジックを提供します。
// 外部APIの呼び出し頻度はレートリミッタで制限します。
type insightsUsecase struct {
	labeler     ThumbnailLabeler
	suggester   TitleSuggester
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewInsightsUsecase はinsightsUsecaseの新しいインスタンスを生成します。
func NewInsightsUsecase(labeler ThumbnailLabeler, suggester TitleSuggester, rateLimiter ratelimiter.RateLimiterInterface) *insightsUsecase {
	return &insightsUsecase{labeler: labeler, suggester: suggester, rateLimiter: rateLimiter}
}

// AnalyzeThumbnail は画像データからラベルを検出します。
func (u *insightsUsecase) AnalyzeThumbnail(ctx context.Context, imageData []byte) ([]entity.ThumbnailLabel, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	u.rateLimiter.WaitIfNeeded()
	return u.labeler.DetectLabels(ctx, imageData)
}

// SuggestTitle は説明文からタイトル案を生成します。
func (u *insightsUsecase) SuggestTitle(ctx context.Context, description string) (*entity.TitleSuggestion, error) {
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	prompt := fmt.Sprintf(TitlePromptTemplate, description)
	u.rateLimiter.WaitIfNeeded()
	suggestion, err := u.suggester.Suggest(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("title suggester failed: %w", err)
	}
	return &entity.TitleSuggestion{
		Description: description,
		Suggestion:  suggestion,
	}, nil
}
