package response

import (
	"time"

	"hisitter/internal/usecase/queries"
)

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}

type ServiceResponse struct {
	ID              string `json:"id"`
	ClientID        string `json:"client_id"`
	BabysitterID    string `json:"babysitter_id"`
	Date            string `json:"date"`
	Shift           string `json:"shift"`
	Address         string `json:"address"`
	CountChildren   int    `json:"count_children"`
	SpecialCares    string `json:"special_cares,omitempty"`
	Status          string `json:"status"`
	ScheduledStart  *int64 `json:"scheduled_start,omitempty"`
	OnMyWayAt       *int64 `json:"on_my_way_at,omitempty"`
	StartedAt       *int64 `json:"started_at,omitempty"`
	EndedAt         *int64 `json:"ended_at,omitempty"`
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`
	TotalCostCents  *int64 `json:"total_cost_cents,omitempty"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:              v.ID.String(),
		ClientID:        v.ClientID.String(),
		BabysitterID:    v.BabysitterID.String(),
		Date:            v.Date.Format("2006-01-02"),
		Shift:           v.Shift,
		Address:         v.Address,
		CountChildren:   v.CountChildren,
		SpecialCares:    v.SpecialCares,
		Status:          v.Status,
		ScheduledStart:  unixPtr(v.ScheduledStart),
		OnMyWayAt:       unixPtr(v.OnMyWayAt),
		StartedAt:       unixPtr(v.StartedAt),
		EndedAt:         unixPtr(v.EndedAt),
		DurationSeconds: v.DurationSeconds,
		TotalCostCents:  v.TotalCostCents,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}

type ServiceListItemResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Shift          string `json:"shift"`
	Status         string `json:"status"`
	ClientName     string `json:"client_name"`
	BabysitterName string `json:"babysitter_name"`
	TotalCostCents *int64 `json:"total_cost_cents,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}

type ServiceListResponse struct {
	Items      []*ServiceListItemResponse `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromServiceList(items []*queries.ServiceListItem, next *queries.Cursor) *ServiceListResponse {
	res := &ServiceListResponse{
		Items: make([]*ServiceListItemResponse, len(items)),
	}
	for i, it := range items {
		res.Items[i] = &ServiceListItemResponse{
			ID:             it.ID.String(),
			Date:           it.Date.Format("2006-01-02"),
			Shift:          it.Shift,
			Status:         it.Status,
			ClientName:     it.ClientName,
			BabysitterName: it.BabysitterName,
			TotalCostCents: it.TotalCostCents,
			CreatedAt:      it.CreatedAt.Unix(),
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
