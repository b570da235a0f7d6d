package models

import (
	"time"

	"gorm.io/gorm"

	"novita/internal/shared/constants"
)

// UserModel is the persistence shape of a user account. Accounts are never
// hard-deleted; the soft delete column keeps history intact.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"size:100"`
	Role         string `gorm:"not null;default:member;size:20"`
	PasswordHash string `gorm:"not null;size:255"`
	DateOfBirth  *time.Time
	Address      string `gorm:"size:255"`
	School       string `gorm:"size:255"`
	Phone        string `gorm:"size:30"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
