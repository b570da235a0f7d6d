package models

import (
	"time"

	"gorm.io/datatypes"

	"novita/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primarykey"`
	TicketID    string `gorm:"uniqueIndex;not null;size:20"`
	OwnerID     uint   `gorm:"not null;index"`
	Subject     string `gorm:"not null;size:200"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"not null;size:50;index"`
	Priority    string `gorm:"not null;size:20;index"`
	Status      string `gorm:"not null;default:open;size:30;index"`
	AssigneeID  *uint  `gorm:"index"`
	Tags        datatypes.JSON
	Metadata    datatypes.JSON
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	ClosedAt    *time.Time

	// No foreign key constraints; relationships are enforced by the
	// application layer.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketResponseModel struct {
	ID        uint   `gorm:"primarykey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Message   string `gorm:"type:text;not null"`
	IsStaff   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
}

func (TicketResponseModel) TableName() string {
	return constants.TableTicketResponses
}

type TicketAttachmentModel struct {
	ID          uint   `gorm:"primarykey"`
	TicketID    uint   `gorm:"not null;index"`
	UploaderID  uint   `gorm:"not null;index"`
	Filename    string `gorm:"not null;size:255"`
	StoragePath string `gorm:"not null;size:512"`
	Size        int64  `gorm:"not null"`
	ContentType string `gorm:"size:100"`
	CreatedAt   time.Time
}

func (TicketAttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}
