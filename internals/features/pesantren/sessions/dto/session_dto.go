package dto

import (
	"errors"
	"strings"

	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	"santri_backend/internals/helpers/dbtime"
)

var ErrTimeRange = errors.New("jam selesai harus setelah jam mulai")

type CreateSessionRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	TimeStart string `json:"time_start" validate:"required"`
	TimeEnd   string `json:"time_end" validate:"required"`
	IsActive  *bool  `json:"is_active"`
}

func (r *CreateSessionRequest) ToModel(sortOrder int) (*sesModel.SessionRefModel, error) {
	start, end, err := parseRange(r.TimeStart, r.TimeEnd)
	if err != nil {
		return nil, err
	}
	m := &sesModel.SessionRefModel{
		Name:      strings.TrimSpace(r.Name),
		TimeStart: start,
		TimeEnd:   end,
		SortOrder: sortOrder,
		IsActive:  true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m, nil
}

type UpdateSessionRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	TimeStart *string `json:"time_start"`
	TimeEnd   *string `json:"time_end"`
}

// Changes memvalidasi rentang jam terhadap nilai lama bila hanya salah satu yang dikirim.
func (r *UpdateSessionRequest) Changes(cur *sesModel.SessionRefModel) (map[string]any, error) {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = strings.TrimSpace(*r.Name)
	}
	if r.TimeStart == nil && r.TimeEnd == nil {
		return out, nil
	}

	startStr, endStr := cur.TimeStart.Format("15:04:05"), cur.TimeEnd.Format("15:04:05")
	if r.TimeStart != nil {
		startStr = *r.TimeStart
	}
	if r.TimeEnd != nil {
		endStr = *r.TimeEnd
	}
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	out["time_start"] = start
	out["time_end"] = end
	return out, nil
}

func parseRange(startStr, endStr string) (dbtime.Tod, dbtime.Tod, error) {
	start, err := dbtime.Parse(startStr)
	if err != nil {
		return dbtime.Tod{}, dbtime.Tod{}, errors.New("format time_start harus HH:MM")
	}
	end, err := dbtime.Parse(endStr)
	if err != nil {
		return dbtime.Tod{}, dbtime.Tod{}, errors.New("format time_end harus HH:MM")
	}
	if !start.Before(end) {
		return dbtime.Tod{}, dbtime.Tod{}, ErrTimeRange
	}
	return start, end, nil
}
