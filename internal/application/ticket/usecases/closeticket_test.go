package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novita/internal/domain/ticket"
	vo "novita/internal/domain/ticket/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

func TestCloseTicketUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("owner closes, closed time stamped", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusOpen)
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCloseTicketUseCase(repo, log)

		result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: "TK00000001", ActorID: 7})
		require.NoError(t, err)
		assert.Equal(t, "closed", result.Status)
		require.NotNil(t, result.ClosedAt)
	})

	t.Run("re-close is idempotent", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusClosed)
		original := *tk.ClosedAt()
		updates := 0
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
			updateFn: func(ctx context.Context, t *ticket.Ticket) error {
				updates++
				return nil
			},
		}
		uc := NewCloseTicketUseCase(repo, log)

		result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: "TK00000001", ActorID: 7})
		require.NoError(t, err)
		assert.Equal(t, 0, updates, "no write for an already-closed ticket")
		require.NotNil(t, result.ClosedAt)
		assert.True(t, result.ClosedAt.Equal(original))
	})

	t.Run("staff may close any ticket", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusInProgress)
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCloseTicketUseCase(repo, log)

		result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: "TK00000001", ActorID: 99, IsStaff: true})
		require.NoError(t, err)
		assert.Equal(t, "closed", result.Status)
	})

	t.Run("stranger gets not found, not forbidden", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusOpen)
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCloseTicketUseCase(repo, log)

		_, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: "TK00000001", ActorID: 8})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("staff reopens a closed ticket and closed time clears", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusClosed)
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewChangeStatusUseCase(repo, log)

		result, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID: "TK00000001",
			ActorID:  42,
			IsStaff:  true,
			Status:   "open",
		})
		require.NoError(t, err)
		assert.Equal(t, "open", result.Status)
		assert.Nil(t, result.ClosedAt)
	})

	t.Run("owner may close via status change", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusOpen)
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewChangeStatusUseCase(repo, log)

		result, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID: "TK00000001",
			ActorID:  7,
			Status:   "closed",
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", result.Status)
	})

	t.Run("owner may not set other statuses", func(t *testing.T) {
		tk := reconstructTestTicket(t, 1, "TK00000001", 7, vo.StatusOpen)
		repo := &mockTicketRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewChangeStatusUseCase(repo, log)

		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID: "TK00000001",
			ActorID:  7,
			Status:   "resolved",
		})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("invalid status rejected before lookup", func(t *testing.T) {
		uc := NewChangeStatusUseCase(&mockTicketRepo{}, log)
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID: "TK00000001",
			ActorID:  42,
			IsStaff:  true,
			Status:   "reopened",
		})
		assert.True(t, errors.IsValidationError(err))
	})
}
