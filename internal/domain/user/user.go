package user

import (
	"fmt"
	"time"

	"novita/internal/shared/authorization"

	vo "novita/internal/domain/user/value_objects"
)

// User is the identity aggregate. Email is the unique identity key; the
// role decides staff privileges for the ticket and admin surfaces. Users
// are never hard-deleted by operations in scope.
type User struct {
	id           uint
	email        *vo.Email
	name         string
	role         authorization.UserRole
	passwordHash string

	// Optional profile attributes, all free-form.
	dateOfBirth *time.Time
	address     string
	school      string
	phone       string

	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a new member account. The password hash must already be
// computed by the caller; the domain never sees plaintext credentials.
func NewUser(email *vo.Email, name string, passwordHash string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}

	now := time.Now()
	return &User{
		email:        email,
		name:         name,
		role:         authorization.RoleMember,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email *vo.Email,
	name string,
	role authorization.UserRole,
	passwordHash string,
	dateOfBirth *time.Time,
	address, school, phone string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		dateOfBirth:  dateOfBirth,
		address:      address,
		school:       school,
		phone:        phone,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

// IsStaff reports whether the user carries staff privileges.
func (u *User) IsStaff() bool {
	return u.role.IsStaff()
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) DateOfBirth() *time.Time {
	return u.dateOfBirth
}

func (u *User) Address() string {
	return u.address
}

func (u *User) School() string {
	return u.school
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// DisplayName returns the name to show in view models, falling back to the
// local part of the email when the profile has no name.
func (u *User) DisplayName() string {
	if u.name != "" {
		return u.name
	}
	return u.email.String()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ProfileUpdate carries optional profile field changes; nil means keep.
type ProfileUpdate struct {
	Name        *string
	DateOfBirth *time.Time
	Address     *string
	School      *string
	Phone       *string
}

// UpdateProfile applies the non-nil fields. No validation beyond size; all
// profile attributes are optional free-form text.
func (u *User) UpdateProfile(update ProfileUpdate) error {
	if update.Name != nil {
		if len(*update.Name) > 100 {
			return fmt.Errorf("name cannot exceed 100 characters")
		}
		u.name = *update.Name
	}
	if update.DateOfBirth != nil {
		u.dateOfBirth = update.DateOfBirth
	}
	if update.Address != nil {
		u.address = *update.Address
	}
	if update.School != nil {
		u.school = *update.School
	}
	if update.Phone != nil {
		u.phone = *update.Phone
	}
	u.updatedAt = time.Now()
	return nil
}

// PromoteToStaff grants staff privileges. Admin-surface operation.
func (u *User) PromoteToStaff() {
	if u.role == authorization.RoleMember {
		u.role = authorization.RoleStaff
		u.updatedAt = time.Now()
	}
}
