package usecases

import (
	"context"
	"time"

	"novita/internal/domain/ticket"
	vo "novita/internal/domain/ticket/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID string
	ActorID  uint
	IsStaff  bool
	Status   string
}

type ChangeStatusResult struct {
	TicketID string
	Status   string
	ClosedAt *time.Time
}

// ChangeStatusUseCase sets the lifecycle tag. Owners may only close their
// own tickets; every other transition is staff work.
type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if len(cmd.TicketID) == 0 || cmd.ActorID == 0 {
		return nil, errors.NewValidationError("ticket ID and actor ID are required")
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tk, err := uc.ticketRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to change status")
	}

	if !tk.CanBeViewedBy(cmd.ActorID, cmd.IsStaff) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !cmd.IsStaff && !status.IsClosed() {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := tk.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tk); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to change status")
	}

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "status", status.String())

	return &ChangeStatusResult{
		TicketID: tk.TicketID(),
		Status:   tk.Status().String(),
		ClosedAt: tk.ClosedAt(),
	}, nil
}
