package ticket

import (
	"context"

	vo "novita/internal/domain/ticket/value_objects"
)

// TicketFilter narrows ticket listings. Staff see every ticket; regular
// users are scoped to OwnerID by the caller.
type TicketFilter struct {
	OwnerID    *uint
	AssigneeID *uint
	Status     *vo.TicketStatus
	Category   *vo.Category
	Priority   *vo.Priority
	Search     string
	Page       int
	PageSize   int
}

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByTicketID(ctx context.Context, ticketID string) (*Ticket, error)
	ExistsByTicketID(ctx context.Context, ticketID string) (bool, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, r *Response) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Response, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
