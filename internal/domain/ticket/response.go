package ticket

import (
	"fmt"
	"time"
)

// Response is a message on a ticket's conversation thread. Whether the
// author acted as staff is captured at write time and never recomputed,
// so later role changes do not rewrite history.
type Response struct {
	id        uint
	ticketID  uint
	authorID  uint
	message   string
	isStaff   bool
	createdAt time.Time
}

func NewResponse(ticketID, authorID uint, message string, isStaff bool) (*Response, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	return &Response{
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		isStaff:   isStaff,
		createdAt: time.Now(),
	}, nil
}

func ReconstructResponse(id, ticketID, authorID uint, message string, isStaff bool, createdAt time.Time) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Response{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		isStaff:   isStaff,
		createdAt: createdAt,
	}, nil
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) TicketID() uint {
	return r.ticketID
}

func (r *Response) AuthorID() uint {
	return r.authorID
}

func (r *Response) Message() string {
	return r.message
}

func (r *Response) IsStaff() bool {
	return r.isStaff
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}
