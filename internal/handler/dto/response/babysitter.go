package response

import (
	"hisitter/internal/usecase/queries"
)

type SlotResponse struct {
	Weekday int    `json:"weekday"`
	Shift   string `json:"shift"`
}

type BabysitterResponse struct {
	UserID          string         `json:"user_id"`
	Username        string         `json:"username"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	EducationDegree string         `json:"education_degree"`
	About           string         `json:"about"`
	HourlyRateCents int64          `json:"hourly_rate_cents"`
	Reputation      float64        `json:"reputation"`
	Slots           []SlotResponse `json:"slots"`
}

func FromBabysitterView(v *queries.BabysitterView) *BabysitterResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Weekday: s.Weekday, Shift: s.Shift}
	}
	return &BabysitterResponse{
		UserID:          v.UserID.String(),
		Username:        v.Username,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		EducationDegree: v.EducationDegree,
		About:           v.About,
		HourlyRateCents: v.HourlyRateCents,
		Reputation:      v.Reputation,
		Slots:           slots,
	}
}

type BabysitterListItemResponse struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	EducationDegree string  `json:"education_degree"`
	HourlyRateCents int64   `json:"hourly_rate_cents"`
	Reputation      float64 `json:"reputation"`
}

type BabysitterListResponse struct {
	Items      []*BabysitterListItemResponse `json:"items"`
	NextCursor string                        `json:"next_cursor,omitempty"`
}

func FromBabysitterList(items []*queries.BabysitterListItem, next *queries.Cursor) *BabysitterListResponse {
	res := &BabysitterListResponse{
		Items: make([]*BabysitterListItemResponse, len(items)),
	}
	for i, it := range items {
		res.Items[i] = &BabysitterListItemResponse{
			UserID:          it.UserID.String(),
			Username:        it.Username,
			FirstName:       it.FirstName,
			LastName:        it.LastName,
			EducationDegree: it.EducationDegree,
			HourlyRateCents: it.HourlyRateCents,
			Reputation:      it.Reputation,
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
