// Package vision はGoogle Cloud Vision APIを使用したラベル検出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"vidshare_backend/internal/feature/insights/domain/entity"
	"vidshare_backend/internal/feature/insights/usecase"
)

// VisionThumbnailLabeler はGoogle Cloud Vision APIを使用してラベルを検出します。
type VisionThumbnailLabeler struct {
	client *gvision.ImageAnnotatorClient
}

// VisionThumbnailLabelerがThumbnailLabelerを実装していることをコンパイル時に検証します。
var _ usecase.ThumbnailLabeler = (*VisionThumbnailLabeler)(nil)

// NewVisionThumbnailLabeler はADCを使用してVisionThumbnailLabelerの新しいインスタンスを生成します。
func NewVisionThumbnailLabeler(ctx context.Context) (*VisionThumbnailLabeler, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionThumbnailLabeler{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionThumbnailLabeler) Close() error {
	return v.client.Close()
}

// DetectLabels は画像バイト列からラベルを検出します。
func (v *VisionThumbnailLabeler) DetectLabels(ctx context.Context, imageData []byte) ([]entity.ThumbnailLabel, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, nil
	}

	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	labels := make([]entity.ThumbnailLabel, 0, len(resp.Responses[0].LabelAnnotations))
	for _, label := range resp.Responses[0].LabelAnnotations {
		labels = append(labels, entity.ThumbnailLabel{
			Name:       label.Description,
			Confidence: label.Score,
		})
	}

	return labels, nil
}
