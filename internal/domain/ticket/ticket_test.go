package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "novita/internal/domain/ticket/value_objects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(7, "cannot reset password", "the reset email never arrives", vo.CategoryTechnical, vo.PriorityMedium)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tk, err := NewTicket(7, "subject", "description", "", "")
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Equal(t, vo.CategoryOther, tk.Category())
		assert.Equal(t, vo.PriorityMedium, tk.Priority())
		assert.Nil(t, tk.ClosedAt())
		assert.Nil(t, tk.AssigneeID())
		assert.Empty(t, tk.TicketID())
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewTicket(0, "subject", "description", vo.CategoryOther, vo.PriorityLow)
		assert.Error(t, err)
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		_, err := NewTicket(7, "", "description", vo.CategoryOther, vo.PriorityLow)
		assert.Error(t, err)
	})

	t.Run("rejects oversized subject", func(t *testing.T) {
		_, err := NewTicket(7, strings.Repeat("s", 201), "description", vo.CategoryOther, vo.PriorityLow)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewTicket(7, "subject", "description", vo.Category("billing"), vo.PriorityLow)
		assert.Error(t, err)
	})
}

func TestTicket_SetTicketID(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.SetTicketID("TK12345678"))
	assert.Equal(t, "TK12345678", tk.TicketID())

	err := tk.SetTicketID("TK87654321")
	assert.Error(t, err)
	assert.Equal(t, "TK12345678", tk.TicketID())
}

func TestTicket_ChangeStatus(t *testing.T) {
	t.Run("entering closed stamps closed time", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
		require.NotNil(t, tk.ClosedAt())
	})

	t.Run("leaving closed clears closed time", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
		require.NotNil(t, tk.ClosedAt())

		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
		assert.Nil(t, tk.ClosedAt())
	})

	t.Run("any status may move to any other", func(t *testing.T) {
		tk := newTestTicket(t)
		for _, s := range []vo.TicketStatus{
			vo.StatusResolved,
			vo.StatusOpen,
			vo.StatusClosed,
			vo.StatusInProgress,
			vo.StatusWaitingForCustomer,
			vo.StatusClosed,
		} {
			assert.NoError(t, tk.ChangeStatus(s))
			assert.Equal(t, s, tk.Status())
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
		first := tk.ClosedAt()

		require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
		assert.Equal(t, first, tk.ClosedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		tk := newTestTicket(t)
		assert.Error(t, tk.ChangeStatus(vo.TicketStatus("reopened")))
	})
}

func TestTicket_Close(t *testing.T) {
	t.Run("sets closed time once", func(t *testing.T) {
		tk := newTestTicket(t)
		tk.Close()
		require.True(t, tk.Status().IsClosed())
		first := tk.ClosedAt()
		require.NotNil(t, first)

		time.Sleep(2 * time.Millisecond)
		tk.Close()
		assert.Equal(t, first, tk.ClosedAt())
	})
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := newTestTicket(t)

	assert.True(t, tk.CanBeViewedBy(7, false), "owner")
	assert.True(t, tk.CanBeViewedBy(99, true), "staff")
	assert.False(t, tk.CanBeViewedBy(8, false), "stranger")
	assert.False(t, tk.CanBeViewedBy(0, false), "anonymous")
}

func TestTicket_RecordCustomerResponse(t *testing.T) {
	t.Run("waiting ticket reopens", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusWaitingForCustomer))

		tk.RecordCustomerResponse()
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("other statuses unchanged", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))

		tk.RecordCustomerResponse()
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.AssignTo(42))
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(42), *tk.AssigneeID())

	tk.Unassign()
	assert.Nil(t, tk.AssigneeID())
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()
	closed := now.Add(-time.Hour)
	assignee := uint(3)

	tk, err := ReconstructTicket(
		1, "TK00001234", 7,
		"subject", "description",
		vo.CategoryRecoverySupport, vo.PriorityHigh, vo.StatusClosed,
		&assignee, []string{"urgent"}, map[string]interface{}{"source": "web"},
		now, now, &closed,
	)
	require.NoError(t, err)
	assert.Equal(t, "TK00001234", tk.TicketID())
	assert.Equal(t, vo.StatusClosed, tk.Status())
	assert.Equal(t, &closed, tk.ClosedAt())
	assert.Equal(t, []string{"urgent"}, tk.Tags())

	t.Run("nil collections normalized", func(t *testing.T) {
		tk, err := ReconstructTicket(2, "TK00005678", 7, "s", "d",
			vo.CategoryOther, vo.PriorityLow, vo.StatusOpen,
			nil, nil, nil, now, now, nil)
		require.NoError(t, err)
		assert.NotNil(t, tk.Tags())
		assert.NotNil(t, tk.Metadata())
	})
}
