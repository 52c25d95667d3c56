package handler

import (
	"time"

	"unistats/internal/tips/models"
)

// TipResponse is one tip as shown to visitors. The author id stays private.
type TipResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Content           string            `json:"content"`
	AttachmentFileURL *string           `json:"attachment_file_url,omitempty"`
	Categories        []models.Category `json:"categories"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type ListResponse struct {
	Tips   []TipResponse           `json:"tips"`
	Total  int                     `json:"total"`
	Counts map[models.Category]int `json:"counts"`
}

func toListResponse(l *models.Listing) ListResponse {
	tips := make([]TipResponse, 0, len(l.Tips))
	for _, t := range l.Tips {
		tips = append(tips, TipResponse{
			ID:                t.ID,
			Title:             t.Title,
			Content:           t.Content,
			AttachmentFileURL: t.AttachmentFileURL,
			Categories:        t.Categories,
			CreatedAt:         t.CreatedAt,
			UpdatedAt:         t.UpdatedAt,
		})
	}
	return ListResponse{Tips: tips, Total: len(tips), Counts: l.Counts}
}
