package usecases

import (
	"context"
	"io"
)

// FileStorage persists attachment bytes under an opaque key.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Notifier delivers owner-facing mail for ticket events. Delivery failures
// are logged, never surfaced to the requester.
type Notifier interface {
	NotifyTicketResponse(ctx context.Context, to, ticketID, subject string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DownloadAttachmentCommand) (*DownloadAttachmentResult, error)
}
