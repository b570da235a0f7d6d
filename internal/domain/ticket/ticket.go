package ticket

import (
	"fmt"
	"time"

	vo "novita/internal/domain/ticket/value_objects"
)

// Ticket is the support-request aggregate. The human-readable identifier
// ("TK" + 8 digits) is globally unique and immutable once assigned. Status
// is a flat mutable field: any value may be set to any other; the only
// stateful behavior is the closed timestamp, which is set when entering
// closed and cleared when leaving it.
type Ticket struct {
	id         uint
	ticketID   string
	ownerID    uint
	subject    string
	description string
	category   vo.Category
	priority   vo.Priority
	status     vo.TicketStatus
	assigneeID *uint
	tags       []string
	metadata   map[string]interface{}
	createdAt  time.Time
	updatedAt  time.Time
	closedAt   *time.Time
}

func NewTicket(ownerID uint, subject, description string, category vo.Category, priority vo.Priority) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if category == "" {
		category = vo.CategoryOther
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		ownerID:     ownerID,
		subject:     subject,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		tags:        []string{},
		metadata:    make(map[string]interface{}),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	ticketID string,
	ownerID uint,
	subject, description string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	assigneeID *uint,
	tags []string,
	metadata map[string]interface{},
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket identifier is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if tags == nil {
		tags = []string{}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Ticket{
		id:          id,
		ticketID:    ticketID,
		ownerID:     ownerID,
		subject:     subject,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		assigneeID:  assigneeID,
		tags:        tags,
		metadata:    metadata,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) TicketID() string {
	return t.ticketID
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) Metadata() map[string]interface{} {
	metadataCopy := make(map[string]interface{}, len(t.metadata))
	for k, v := range t.metadata {
		metadataCopy[k] = v
	}
	return metadataCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

// IsOpen reports whether the ticket still needs attention.
func (t *Ticket) IsOpen() bool {
	return t.status.IsActive()
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetTicketID assigns the generated identifier. Immutable once set.
func (t *Ticket) SetTicketID(ticketID string) error {
	if len(t.ticketID) > 0 {
		return fmt.Errorf("ticket identifier is already set")
	}
	if len(ticketID) == 0 {
		return fmt.Errorf("ticket identifier cannot be empty")
	}
	t.ticketID = ticketID
	return nil
}

func (t *Ticket) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	t.tags = tags
	t.updatedAt = time.Now()
}

func (t *Ticket) SetMetadata(metadata map[string]interface{}) {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	t.metadata = metadata
	t.updatedAt = time.Now()
}

// CanBeViewedBy is the visibility predicate: owner or staff only. A false
// result must surface as not-found so ticket existence is never leaked.
func (t *Ticket) CanBeViewedBy(userID uint, isStaff bool) bool {
	if isStaff {
		return true
	}
	return userID != 0 && t.ownerID == userID
}

// ChangeStatus sets the lifecycle tag. Any status may move to any other;
// the closed timestamp is set once when entering closed and cleared when
// leaving it, so reopening erases the closure time.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsClosed() {
		if t.closedAt == nil {
			now := time.Now()
			t.closedAt = &now
		}
	} else {
		t.closedAt = nil
	}

	return nil
}

// Close is the idempotent close operation: re-closing a closed ticket
// leaves closedAt untouched.
func (t *Ticket) Close() {
	if t.status.IsClosed() {
		return
	}
	// ChangeStatus with a valid constant cannot fail.
	_ = t.ChangeStatus(vo.StatusClosed)
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.updatedAt = time.Now()
	return nil
}

// AssignTo hands the ticket to a staff member. The caller verifies that
// the assignee actually is staff.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = time.Now()
}

// RecordCustomerResponse applies the side effect of a non-staff response:
// a ticket waiting on its owner moves back to open.
func (t *Ticket) RecordCustomerResponse() {
	if t.status.IsWaitingForCustomer() {
		_ = t.ChangeStatus(vo.StatusOpen)
	}
}
