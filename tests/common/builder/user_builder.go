//go:build unit || e2e

package builder

import (
	"time"

	"hisitter/internal/domain/user"
	"hisitter/internal/usecase/queries"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	IsVerified   bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "client@example.com",
		Username:     "testclient",
		PasswordHash: "hashed_password",
		Role:         "client",
		FirstName:    "Test",
		LastName:     "Client",
		Phone:        "5551234567",
		Address:      "123 Main St",
		IsVerified:   true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhoneNumber(u.Phone)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, username, u.PasswordHash, role, u.FirstName, u.LastName, phone, u.Address), nil
}

func (u *UserBuilder) BuildActor() user.Actor {
	role, _ := user.NewRole(u.Role)
	return user.NewActor(u.ID, role)
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsVerified:   u.IsVerified,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var lastLogin *time.Time
	return &queries.AuthorizedUserView{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsVerified: u.IsVerified,
		LastLogin:  lastLogin,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) AsBabysitter() *UserBuilder {
	u.Role = "babysitter"
	u.Email = "sitter@example.com"
	u.Username = "testsitter"
	return u
}

func (u *UserBuilder) AsUnverified() *UserBuilder {
	u.IsVerified = false
	return u
}
