package response

import "hisitter/internal/usecase/queries"

type SignupResponse struct {
	UserID string `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
