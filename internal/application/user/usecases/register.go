package usecases

import (
	"context"
	"time"

	"novita/internal/domain/user"
	vo "novita/internal/domain/user/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Password string
	Name     string
}

type RegisterResult struct {
	UserID    uint
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	newUser, err := user.NewUser(email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email().String())

	return &RegisterResult{
		UserID:    newUser.ID(),
		Email:     newUser.Email().String(),
		Name:      newUser.Name(),
		Role:      newUser.Role().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Password) > 72 {
		return errors.NewValidationError("password exceeds maximum length of 72 characters")
	}
	if len(cmd.Name) > 100 {
		return errors.NewValidationError("name exceeds maximum length of 100 characters")
	}
	return nil
}
