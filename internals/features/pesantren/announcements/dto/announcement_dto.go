package dto

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	anModel "santri_backend/internals/features/pesantren/announcements/model"
	"santri_backend/internals/features/pesantren/announcements/service"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Content  string `json:"content" validate:"required"`
	Audience string `json:"audience" validate:"required,oneof=all ustadz wali"`
	IsActive *bool  `json:"is_active"`
}

func (r *CreateAnnouncementRequest) ToModel(createdBy *uuid.UUID) *anModel.AnnouncementModel {
	m := &anModel.AnnouncementModel{
		Title:     strings.TrimSpace(r.Title),
		Content:   r.Content,
		Audience:  r.Audience,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=3,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Audience *string `json:"audience" validate:"omitempty,oneof=all ustadz wali"`
}

func (r *UpdateAnnouncementRequest) Changes() map[string]any {
	out := map[string]any{}
	if r.Title != nil {
		out["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		out["content"] = *r.Content
	}
	if r.Audience != nil {
		out["audience"] = *r.Audience
	}
	return out
}

type AnnouncementResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentHTML string     `json:"content_html"`
	Audience    string     `json:"audience"`
	IsActive    bool       `json:"is_active"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewAnnouncementResponse(m *anModel.AnnouncementModel) AnnouncementResponse {
	html, err := service.RenderMarkdown(m.Content)
	if err != nil {
		log.Printf("[WARN] render markdown pengumuman %s: %v", m.ID, err)
	}
	return AnnouncementResponse{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		ContentHTML: html,
		Audience:    m.Audience,
		IsActive:    m.IsActive,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func NewAnnouncementResponses(rows []anModel.AnnouncementModel) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewAnnouncementResponse(&rows[i]))
	}
	return out
}
