package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/babysitter"
	"hisitter/internal/domain/user"
	"hisitter/internal/infra"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/pkg/jwt"
	"hisitter/internal/pkg/password"
	"hisitter/internal/usecase/queries"
	"hisitter/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.Mark(errs.New("user not found"), errs.ErrUserNotFound)
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("email or username already taken")
	ErrMissingProfile       = errs.Mark(errs.New("babysitter signup requires a profile"), errs.ErrDomainValidation)
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrDomainValidation     = errs.Mark(errs.New("domain validation error"), errs.ErrDomainValidation)
)

type SlotInput struct {
	Weekday int
	Shift   string
}

type BabysitterProfileInput struct {
	EducationDegree string
	About           string
	HourlyRateCents int64
	Slots           []SlotInput
}

type SignupRequest struct {
	Email       string
	Username    string
	Password    string
	Role        string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	Babysitter  *BabysitterProfileInput
}

type SignupResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	VerifyEmail(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	notifier   Notifier
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, notifier Notifier) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		notifier:   notifier,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	plain, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	phone, err := user.NewPhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var profile *babysitter.Babysitter
	if role == user.RoleBabysitter {
		if req.Babysitter == nil {
			return nil, ErrMissingProfile
		}
	} else if req.Babysitter != nil {
		return nil, ErrMissingProfile
	}

	hash, err := password.HashPassword(plain.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	account := user.NewUser(email, username, hash, role, req.FirstName, req.LastName, phone, req.Address)

	if role == user.RoleBabysitter {
		schedule, serr := buildSchedule(req.Babysitter.Slots)
		if serr != nil {
			return nil, errs.Mark(serr, ErrDomainValidation)
		}
		profile, err = babysitter.NewBabysitter(
			account.ID(),
			req.Babysitter.EducationDegree,
			req.Babysitter.About,
			req.Babysitter.HourlyRateCents,
			schedule,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Users().Create(ctx, tx.DB(), account); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		if profile != nil {
			return tx.Babysitters().Create(ctx, tx.DB(), profile)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateVerificationToken(account.ID(), role)
	if err != nil {
		slog.Warn("failed to generate verification token", "user_id", account.ID(), "error", err.Error())
	} else if nerr := a.notifier.VerificationEmail(ctx, account.ID(), email.Value(), token); nerr != nil {
		slog.Warn("failed to enqueue verification email", "user_id", account.ID(), "error", nerr.Error())
	}

	return &SignupResult{UserID: account.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err = password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generatePair(view.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", view.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateTokenOfType(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The account must still exist before new tokens are minted
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	return a.generatePair(claims.UserID, role)
}

// VerifyEmail flips the account to verified from the emailed token.
// Verifying twice is accepted silently.
func (a *authCommandsImpl) VerifyEmail(ctx context.Context, token string) error {
	claims, err := a.jwtService.ValidateTokenOfType(token, jwt.TokenTypeVerification)
	if err != nil {
		return errs.Mark(err, ErrTokenValidation)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().MarkVerified(ctx, tx.DB(), claims.UserID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		return nil
	})
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func buildSchedule(inputs []SlotInput) (availability.Schedule, error) {
	slots := make([]availability.Slot, 0, len(inputs))
	for _, in := range inputs {
		shift, err := availability.NewShift(in.Shift)
		if err != nil {
			return availability.Schedule{}, err
		}
		slot, err := availability.NewSlot(time.Weekday(in.Weekday), shift)
		if err != nil {
			return availability.Schedule{}, err
		}
		slots = append(slots, slot)
	}
	return availability.NewSchedule(slots), nil
}
