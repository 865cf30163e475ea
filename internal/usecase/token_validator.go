package usecase

import (
	"hisitter/internal/domain/user"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidAccessToken = errs.New("invalid access token")

// TokenValidator turns a bearer token into an authenticated actor.
type TokenValidator interface {
	ValidateToken(token string) (user.Actor, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (user.Actor, error) {
	claims, err := v.jwtService.ValidateTokenOfType(token, jwt.TokenTypeAccess)
	if err != nil {
		return user.Actor{}, errs.Mark(err, ErrInvalidAccessToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Mark(err, ErrInvalidAccessToken)
	}

	if claims.UserID == uuid.Nil {
		return user.Actor{}, ErrInvalidAccessToken
	}

	return user.NewActor(claims.UserID, role), nil
}
