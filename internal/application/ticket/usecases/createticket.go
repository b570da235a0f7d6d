package usecases

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"novita/internal/domain/ticket"
	vo "novita/internal/domain/ticket/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

// maxIDAttempts bounds identifier regeneration when the random draw
// collides with an existing ticket.
const maxIDAttempts = 5

// AttachmentUpload is one candidate file on a create or respond request.
type AttachmentUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

type CreateTicketCommand struct {
	OwnerID     uint
	Subject     string
	Description string
	Category    string
	Priority    string
	Tags        []string
	Metadata    map[string]interface{}
	Attachments []AttachmentUpload
}

type CreateTicketResult struct {
	ID        uint
	TicketID  string
	Status    string
	CreatedAt time.Time
	// Warnings carries per-file attachment rejections; the ticket itself
	// was created.
	Warnings []string
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	idGenerator    ticket.IDGenerator
	storage        FileStorage
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	idGenerator ticket.IDGenerator,
	storage FileStorage,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		idGenerator:    idGenerator,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.OwnerID, cmd.Subject, cmd.Description, vo.Category(cmd.Category), vo.Priority(cmd.Priority))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Tags) > 0 {
		newTicket.SetTags(cmd.Tags)
	}
	if len(cmd.Metadata) > 0 {
		newTicket.SetMetadata(cmd.Metadata)
	}

	ticketID, err := uc.generateUniqueID(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket identifier", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}
	if err := newTicket.SetTicketID(ticketID); err != nil {
		return nil, errors.NewInternalError("failed to create ticket")
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	warnings := uc.storeAttachments(ctx, newTicket.ID(), cmd.OwnerID, cmd.Attachments)

	uc.logger.Infow("ticket created", "ticket_id", newTicket.TicketID(), "owner_id", cmd.OwnerID)

	return &CreateTicketResult{
		ID:        newTicket.ID(),
		TicketID:  newTicket.TicketID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
		Warnings:  warnings,
	}, nil
}

func (uc *CreateTicketUseCase) generateUniqueID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate, err := uc.idGenerator.Generate()
		if err != nil {
			return "", err
		}
		exists, err := uc.ticketRepo.ExistsByTicketID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted %d identifier attempts", maxIDAttempts)
}

// storeAttachments validates and persists each upload. Rejections become
// warnings on the result; a storage failure for an accepted file does too.
func (uc *CreateTicketUseCase) storeAttachments(ctx context.Context, ticketDBID, uploaderID uint, uploads []AttachmentUpload) []string {
	var warnings []string
	for _, upload := range uploads {
		if err := ticket.ValidateAttachment(upload.Filename, upload.Size); err != nil {
			warnings = append(warnings, err.Error())
			continue
		}

		key := fmt.Sprintf("tickets/%d/%s", ticketDBID, uuid.NewString())
		if err := uc.storage.Save(ctx, key, upload.Reader); err != nil {
			uc.logger.Errorw("failed to store attachment", "error", err, "filename", upload.Filename)
			warnings = append(warnings, fmt.Sprintf("failed to store file: %s", upload.Filename))
			continue
		}

		attachment, err := ticket.NewAttachment(ticketDBID, uploaderID, upload.Filename, key, upload.Size, upload.ContentType)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		if err := uc.attachmentRepo.Create(ctx, attachment); err != nil {
			uc.logger.Errorw("failed to save attachment record", "error", err, "filename", upload.Filename)
			warnings = append(warnings, fmt.Sprintf("failed to store file: %s", upload.Filename))
		}
	}
	return warnings
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}
	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if cmd.Category != "" && !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
