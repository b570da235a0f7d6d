package usecases

import (
	"context"

	"novita/internal/domain/ticket"
	vo "novita/internal/domain/ticket/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/utils"
)

type ListTicketsCommand struct {
	ActorID  uint
	IsStaff  bool
	Search   string
	Status   string
	Category string
	Priority string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets []*ticket.Ticket
	Total   int64
	Page    int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	pagination := utils.ValidatePagination(cmd.Page, cmd.PageSize)

	filter := ticket.TicketFilter{
		Search:   cmd.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	// Staff browse everything; everyone else is scoped to their own.
	if !cmd.IsStaff {
		ownerID := cmd.ActorID
		filter.OwnerID = &ownerID
	}

	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if cmd.Category != "" {
		category, err := vo.NewCategory(cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}
	if cmd.Priority != "" {
		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: tickets,
		Total:   total,
		Page:    pagination.Page,
	}, nil
}
