package ticket

import (
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	"novita/internal/application/ticket/usecases"
	"novita/internal/domain/ticket"
	"novita/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject     string   `form:"subject" binding:"required,max=200"`
	Description string   `form:"description" binding:"required,max=5000"`
	Category    string   `form:"category"`
	Priority    string   `form:"priority"`
	Tags        []string `form:"tags"`
}

func (r CreateTicketRequest) ToCommand(ownerID uint, files []*multipart.FileHeader) (usecases.CreateTicketCommand, func(), error) {
	uploads, closeAll, err := openUploads(files)
	if err != nil {
		return usecases.CreateTicketCommand{}, nil, err
	}

	return usecases.CreateTicketCommand{
		OwnerID:     ownerID,
		Subject:     r.Subject,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Tags:        r.Tags,
		Attachments: uploads,
	}, closeAll, nil
}

type AddResponseRequest struct {
	Message string `form:"message" binding:"required,max=5000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ListTicketsRequest struct {
	Search   string
	Status   string
	Category string
	Priority string
	Page     int
	PageSize int
}

func parseListTicketsRequest(c *gin.Context) ListTicketsRequest {
	pagination := utils.ParsePagination(c)

	return ListTicketsRequest{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
}

// openUploads opens every multipart file and returns a cleanup closing them
// all. Oversized or misnamed files are passed through; the use case decides
// which to reject.
func openUploads(files []*multipart.FileHeader) ([]usecases.AttachmentUpload, func(), error) {
	uploads := make([]usecases.AttachmentUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		uploads = append(uploads, usecases.AttachmentUpload{
			Filename:    fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		})
	}

	return uploads, closeAll, nil
}

type TicketSummary struct {
	ID         uint       `json:"id"`
	TicketID   string     `json:"ticket_id"`
	OwnerID    uint       `json:"owner_id"`
	Subject    string     `json:"subject"`
	Category   string     `json:"category"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	AssigneeID *uint      `json:"assignee_id,omitempty"`
	Tags       []string   `json:"tags"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

func NewTicketSummary(t *ticket.Ticket) TicketSummary {
	return TicketSummary{
		ID:         t.ID(),
		TicketID:   t.TicketID(),
		OwnerID:    t.OwnerID(),
		Subject:    t.Subject(),
		Category:   t.Category().String(),
		Priority:   t.Priority().String(),
		Status:     t.Status().String(),
		AssigneeID: t.AssigneeID(),
		Tags:       t.Tags(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
		ClosedAt:   t.ClosedAt(),
	}
}

type ResponseEntry struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id"`
	Message   string    `json:"message"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentEntry struct {
	ID          uint      `json:"id"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketDetailResponse struct {
	TicketSummary
	Description string            `json:"description"`
	IsOpen      bool              `json:"is_open"`
	Responses   []ResponseEntry   `json:"responses"`
	Attachments []AttachmentEntry `json:"attachments"`
}

func NewTicketDetailResponse(result *usecases.GetTicketResult) TicketDetailResponse {
	responses := make([]ResponseEntry, 0, len(result.Responses))
	for _, r := range result.Responses {
		responses = append(responses, ResponseEntry{
			ID:        r.ID,
			AuthorID:  r.AuthorID,
			Message:   r.Message,
			IsStaff:   r.IsStaff,
			CreatedAt: r.CreatedAt,
		})
	}

	attachments := make([]AttachmentEntry, 0, len(result.Attachments))
	for _, a := range result.Attachments {
		attachments = append(attachments, AttachmentEntry{
			ID:          a.ID,
			Filename:    a.Filename,
			Size:        a.Size,
			ContentType: a.ContentType,
			CreatedAt:   a.CreatedAt,
		})
	}

	return TicketDetailResponse{
		TicketSummary: NewTicketSummary(result.Ticket),
		Description:   result.Ticket.Description(),
		IsOpen:        result.IsOpen,
		Responses:     responses,
		Attachments:   attachments,
	}
}
