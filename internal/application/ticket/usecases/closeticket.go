package usecases

import (
	"context"
	"time"

	"novita/internal/domain/ticket"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID string
	ActorID  uint
	IsStaff  bool
}

type CloseTicketResult struct {
	TicketID string
	Status   string
	ClosedAt *time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	if len(cmd.TicketID) == 0 || cmd.ActorID == 0 {
		return nil, errors.NewValidationError("ticket ID and actor ID are required")
	}

	tk, err := uc.ticketRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to close ticket")
	}

	// Permission failures are indistinguishable from missing tickets.
	if !tk.CanBeViewedBy(cmd.ActorID, cmd.IsStaff) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	alreadyClosed := tk.Status().IsClosed()
	tk.Close()

	if !alreadyClosed {
		if err := uc.ticketRepo.Update(ctx, tk); err != nil {
			uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", cmd.TicketID)
			return nil, errors.NewInternalError("failed to close ticket")
		}
		uc.logger.Infow("ticket closed", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
	}

	return &CloseTicketResult{
		TicketID: tk.TicketID(),
		Status:   tk.Status().String(),
		ClosedAt: tk.ClosedAt(),
	}, nil
}
