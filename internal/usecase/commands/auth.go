package commands

import (
	"context"
	"errors"

	"renthub/internal/domain/user"
	"renthub/internal/infra"
	"renthub/internal/infra/repository"
	"renthub/internal/pkg/errs"
	"renthub/internal/pkg/jwt"
	"renthub/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email is already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type ProfileRepository interface {
	Create(ctx context.Context, p *user.Profile) error
	FindByEmail(ctx context.Context, email string) (*user.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.Profile, error)
	UpdateDisplay(ctx context.Context, id uuid.UUID, upd repository.ProfileUpdate) error
}

type AuthResult struct {
	Token   string
	Profile *user.Profile
}

type AuthCommands interface {
	Register(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*user.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd repository.ProfileUpdate) error
}

type authCommandsImpl struct {
	profiles ProfileRepository
	tokens   *jwt.Service
}

func NewAuthCommands(profiles ProfileRepository, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{profiles: profiles, tokens: tokens}
}

// Register creates the account and its profile row in one step. Profile
// existence is guaranteed at the auth boundary, so downstream code never
// repeats the "ensure profile exists" dance.
func (c *authCommandsImpl) Register(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := user.NewPassword(plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	profile := user.NewProfile(emailVO, hash, user.RoleUser)
	if err := c.profiles.Create(ctx, profile); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.issueToken(profile)
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	profile, err := c.profiles.FindByEmail(ctx, emailVO.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(profile.PasswordHash(), plainPassword); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "failed to compare password")
	}

	return c.issueToken(profile)
}

func (c *authCommandsImpl) GetProfile(ctx context.Context, id uuid.UUID) (*user.Profile, error) {
	profile, err := c.profiles.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrForbidden)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return profile, nil
}

func (c *authCommandsImpl) UpdateProfile(ctx context.Context, id uuid.UUID, upd repository.ProfileUpdate) error {
	if err := c.profiles.UpdateDisplay(ctx, id, upd); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrForbidden)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *authCommandsImpl) issueToken(profile *user.Profile) (*AuthResult, error) {
	token, err := c.tokens.GenerateToken(profile.ID(), profile.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}
	return &AuthResult{Token: token, Profile: profile}, nil
}
