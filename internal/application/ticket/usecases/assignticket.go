package usecases

import (
	"context"

	"novita/internal/domain/ticket"
	"novita/internal/domain/user"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   string
	ActorID    uint
	IsStaff    bool
	AssigneeID uint
}

type AssignTicketResult struct {
	TicketID   string
	AssigneeID uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	if len(cmd.TicketID) == 0 || cmd.ActorID == 0 || cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("ticket ID, actor ID and assignee ID are required")
	}
	if !cmd.IsStaff {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("assignee does not exist")
		}
		uc.logger.Errorw("failed to get assignee", "error", err, "user_id", cmd.AssigneeID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}
	if !assignee.IsStaff() {
		return nil, errors.NewValidationError("assignee must be a staff member")
	}

	tk, err := uc.ticketRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	if err := tk.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tk); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	uc.logger.Infow("ticket assigned", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   tk.TicketID(),
		AssigneeID: cmd.AssigneeID,
	}, nil
}
