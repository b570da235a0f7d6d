package value_objects

import "fmt"

// TicketStatus is a flat mutable lifecycle tag: any status may be set to
// any other. There is deliberately no transition table; only side effects
// (the closed timestamp) key off the tag. See Ticket.ChangeStatus.
type TicketStatus string

const (
	StatusOpen               TicketStatus = "open"
	StatusInProgress         TicketStatus = "in_progress"
	StatusWaitingForCustomer TicketStatus = "waiting_for_customer"
	StatusResolved           TicketStatus = "resolved"
	StatusClosed             TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:               true,
	StatusInProgress:         true,
	StatusWaitingForCustomer: true,
	StatusResolved:           true,
	StatusClosed:             true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaitingForCustomer() bool {
	return ts == StatusWaitingForCustomer
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsActive reports whether the ticket still needs attention.
func (ts TicketStatus) IsActive() bool {
	return ts == StatusOpen || ts == StatusInProgress || ts == StatusWaitingForCustomer
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
