package response

import (
	"hisitter/internal/usecase/queries"
)

type ReviewCreatedResponse struct {
	ReviewID string `json:"review_id"`
}

type ReviewResponse struct {
	ID             string `json:"id"`
	ServiceID      string `json:"service_id"`
	ClientID       string `json:"client_id"`
	ClientUsername string `json:"client_username"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:             v.ID.String(),
		ServiceID:      v.ServiceID.String(),
		ClientID:       v.ClientID.String(),
		ClientUsername: v.ClientUsername,
		Rating:         v.Rating,
		Comment:        v.Comment,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

type ReviewListResponse struct {
	Items      []*ReviewResponse `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{
		Items: make([]*ReviewResponse, len(items)),
	}
	for i, it := range items {
		res.Items[i] = FromReviewView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
