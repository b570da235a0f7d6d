package usecases

import (
	"context"

	"novita/internal/domain/user"
	"novita/internal/shared/authorization"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same error for unknown email and bad password.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	if err := uc.passwordHasher.Verify(existingUser.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existingUser.ID())
		return nil, errors.NewInternalError("failed to authenticate")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginResult{
		User:         existingUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
