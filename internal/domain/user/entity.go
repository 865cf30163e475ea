package user

import (
	"time"

	"github.com/google/uuid"
)

// User covers both clients and babysitters; the role decides which
// profile data accompanies the account.
type User struct {
	id           uuid.UUID
	email        Email
	username     Username
	passwordHash string
	role         Role
	firstName    string
	lastName     string
	phoneNumber  PhoneNumber
	address      string
	isVerified   bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, username Username, passwordHash string, role Role, firstName, lastName string, phone PhoneNumber, address string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phone,
		address:      address,
		isVerified:   false,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	username Username,
	passwordHash string,
	role Role,
	firstName, lastName string,
	phone PhoneNumber,
	address string,
	isVerified bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phone,
		address:      address,
		isVerified:   isVerified,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Verify marks the account as email-verified. Verifying twice is a
// no-op, not an error.
func (u *User) Verify() {
	u.isVerified = true
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() Email            { return u.email }
func (u *User) Username() Username      { return u.username }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) FirstName() string       { return u.firstName }
func (u *User) LastName() string        { return u.lastName }
func (u *User) PhoneNumber() PhoneNumber { return u.phoneNumber }
func (u *User) Address() string         { return u.address }
func (u *User) IsVerified() bool        { return u.isVerified }
func (u *User) LastLogin() *time.Time   { return u.lastLogin }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}
