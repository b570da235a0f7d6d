package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"novita/internal/domain/ticket"
	"novita/internal/domain/user"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type AddResponseCommand struct {
	TicketID    string
	AuthorID    uint
	Message     string
	Attachments []AttachmentUpload
}

type AddResponseResult struct {
	ResponseID   uint
	TicketStatus string
	IsStaff      bool
	CreatedAt    time.Time
	Warnings     []string
}

type AddResponseUseCase struct {
	ticketRepo     ticket.Repository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.Repository
	storage        FileStorage
	notifier       Notifier
	logger         logger.Interface
}

func NewAddResponseUseCase(
	ticketRepo ticket.Repository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.Repository,
	storage FileStorage,
	notifier Notifier,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		storage:        storage,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error) {
	if len(cmd.TicketID) == 0 || cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("ticket ID and author ID are required")
	}
	if len(cmd.Message) == 0 {
		return nil, errors.NewValidationError("message is required")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get author", "error", err, "user_id", cmd.AuthorID)
		return nil, errors.NewInternalError("failed to add response")
	}

	tk, err := uc.loadVisible(ctx, cmd.TicketID, cmd.AuthorID, author.IsStaff())
	if err != nil {
		return nil, err
	}

	// The staff flag is recorded at write time and never recomputed.
	response, err := ticket.NewResponse(tk.ID(), cmd.AuthorID, cmd.Message, author.IsStaff())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.responseRepo.Create(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to add response")
	}

	if !author.IsStaff() {
		before := tk.Status()
		tk.RecordCustomerResponse()
		if tk.Status() != before {
			if err := uc.ticketRepo.Update(ctx, tk); err != nil {
				uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", cmd.TicketID)
				return nil, errors.NewInternalError("failed to add response")
			}
		}
	}

	warnings := uc.storeAttachments(ctx, tk.ID(), cmd.AuthorID, cmd.Attachments)

	if author.IsStaff() {
		uc.notifyOwner(ctx, tk)
	}

	uc.logger.Infow("response added", "ticket_id", cmd.TicketID, "response_id", response.ID(), "is_staff", author.IsStaff())

	return &AddResponseResult{
		ResponseID:   response.ID(),
		TicketStatus: tk.Status().String(),
		IsStaff:      response.IsStaff(),
		CreatedAt:    response.CreatedAt(),
		Warnings:     warnings,
	}, nil
}

func (uc *AddResponseUseCase) loadVisible(ctx context.Context, ticketID string, userID uint, isStaff bool) (*ticket.Ticket, error) {
	tk, err := uc.ticketRepo.GetByTicketID(ctx, ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if !tk.CanBeViewedBy(userID, isStaff) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return tk, nil
}

func (uc *AddResponseUseCase) storeAttachments(ctx context.Context, ticketDBID, uploaderID uint, uploads []AttachmentUpload) []string {
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

func (uc *AddResponseUseCase) notifyOwner(ctx context.Context, tk *ticket.Ticket) {
	if uc.notifier == nil {
		return
	}
	owner, err := uc.userRepo.GetByID(ctx, tk.OwnerID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket owner for notification", "error", err, "ticket_id", tk.TicketID())
		return
	}
	if err := uc.notifier.NotifyTicketResponse(ctx, owner.Email().String(), tk.TicketID(), tk.Subject()); err != nil {
		uc.logger.Warnw("failed to send response notification", "error", err, "ticket_id", tk.TicketID())
	}
}
