package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers             = "users"
	TableCategories        = "categories"
	TablePosts             = "posts"
	TableComments          = "comments"
	TablePostLikes         = "post_likes"
	TableTickets           = "tickets"
	TableTicketResponses   = "ticket_responses"
	TableTicketAttachments = "ticket_attachments"

	// Ticket identifier format: fixed prefix followed by 8 random digits.
	TicketIDPrefix = "TK"
	TicketIDDigits = 8

	// Attachment acceptance limits
	MaxAttachmentSize = 10 * 1024 * 1024
)
