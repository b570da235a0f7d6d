package usecases

import (
	"context"
	"io"

	"novita/internal/domain/ticket"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type DownloadAttachmentCommand struct {
	AttachmentID uint
	ActorID      uint
	IsStaff      bool
}

type DownloadAttachmentResult struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, cmd DownloadAttachmentCommand) (*DownloadAttachmentResult, error) {
	if cmd.AttachmentID == 0 || cmd.ActorID == 0 {
		return nil, errors.NewValidationError("attachment ID and actor ID are required")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get attachment", "error", err, "attachment_id", cmd.AttachmentID)
		return nil, errors.NewInternalError("failed to load attachment")
	}

	// Visibility follows the owning ticket.
	tk, err := uc.ticketRepo.GetByID(ctx, attachment.TicketID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", attachment.TicketID())
		return nil, errors.NewInternalError("failed to load attachment")
	}
	if !tk.CanBeViewedBy(cmd.ActorID, cmd.IsStaff) {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	content, err := uc.storage.Open(ctx, attachment.StoragePath())
	if err != nil {
		uc.logger.Errorw("failed to open stored file", "error", err, "attachment_id", cmd.AttachmentID)
		return nil, errors.NewInternalError("failed to load attachment")
	}

	return &DownloadAttachmentResult{
		Filename:    attachment.Filename(),
		ContentType: attachment.ContentType(),
		Size:        attachment.Size(),
		Content:     content,
	}, nil
}
