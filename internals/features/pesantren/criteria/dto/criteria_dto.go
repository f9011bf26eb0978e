package dto

import (
	"strings"

	cModel "santri_backend/internals/features/pesantren/criteria/model"
)

type CreateCriteriaRequest struct {
	Aspect      string  `json:"aspect" validate:"required,oneof=adab discipline"`
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"is_active"`
}

func (r *CreateCriteriaRequest) ToModel(sortOrder int) *cModel.CriteriaRefModel {
	m := &cModel.CriteriaRefModel{
		Aspect:      r.Aspect,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		IsActive:    true,
		SortOrder:   sortOrder,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

// sort_order & aspect tidak bisa diubah lewat update biasa.
type UpdateCriteriaRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (r *UpdateCriteriaRequest) Changes() map[string]any {
	out := map[string]any{}
	if r.Title != nil {
		out["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		out["description"] = *r.Description
	}
	return out
}
