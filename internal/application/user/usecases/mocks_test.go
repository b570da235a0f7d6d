package usecases

import (
	"context"

	"novita/internal/domain/user"
	"novita/internal/shared/authorization"
	"novita/internal/shared/errors"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByIDFn       func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	updateFn        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

type mockPasswordHasher struct {
	hashFn   func(password string) (string, error)
	verifyFn func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hashedPassword, password string) error {
	if m.verifyFn != nil {
		return m.verifyFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return errors.NewUnauthorizedError("password mismatch")
	}
	return nil
}

type mockJWTService struct {
	generateFn func(userID uint, role authorization.UserRole) (*TokenPair, error)
}

func (m *mockJWTService) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	if m.generateFn != nil {
		return m.generateFn(userID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockJWTService) Refresh(refreshToken string) (*TokenPair, error) {
	return &TokenPair{AccessToken: "access", RefreshToken: refreshToken, ExpiresIn: 900}, nil
}
