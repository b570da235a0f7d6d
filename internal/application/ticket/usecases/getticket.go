package usecases

import (
	"context"
	"time"

	"novita/internal/domain/ticket"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID string
	ActorID  uint
	IsStaff  bool
}

type ResponseView struct {
	ID        uint
	AuthorID  uint
	Message   string
	IsStaff   bool
	CreatedAt time.Time
}

type AttachmentView struct {
	ID          uint
	Filename    string
	Size        int64
	ContentType string
	CreatedAt   time.Time
}

type GetTicketResult struct {
	Ticket      *ticket.Ticket
	Responses   []ResponseView
	Attachments []AttachmentView
	IsOpen      bool
}

type GetTicketUseCase struct {
	ticketRepo     ticket.Repository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if len(cmd.TicketID) == 0 || cmd.ActorID == 0 {
		return nil, errors.NewValidationError("ticket ID and actor ID are required")
	}

	tk, err := uc.ticketRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	if !tk.CanBeViewedBy(cmd.ActorID, cmd.IsStaff) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	responses, err := uc.responseRepo.ListByTicket(ctx, tk.ID())
	if err != nil {
		uc.logger.Errorw("failed to load responses", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, tk.ID())
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	responseViews := make([]ResponseView, 0, len(responses))
	for _, r := range responses {
		responseViews = append(responseViews, ResponseView{
			ID:        r.ID(),
			AuthorID:  r.AuthorID(),
			Message:   r.Message(),
			IsStaff:   r.IsStaff(),
			CreatedAt: r.CreatedAt(),
		})
	}

	attachmentViews := make([]AttachmentView, 0, len(attachments))
	for _, a := range attachments {
		attachmentViews = append(attachmentViews, AttachmentView{
			ID:          a.ID(),
			Filename:    a.Filename(),
			Size:        a.Size(),
			ContentType: a.ContentType(),
			CreatedAt:   a.CreatedAt(),
		})
	}

	return &GetTicketResult{
		Ticket:      tk,
		Responses:   responseViews,
		Attachments: attachmentViews,
		IsOpen:      tk.IsOpen(),
	}, nil
}
