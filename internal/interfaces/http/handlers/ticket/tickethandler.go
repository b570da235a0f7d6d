package ticket

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novita/internal/application/ticket/usecases"
	"novita/internal/shared/authorization"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/utils"

	"novita/internal/interfaces/http/middleware"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	addResponseUC        usecases.AddResponseExecutor
	closeTicketUC        usecases.CloseTicketExecutor
	changeStatusUC       usecases.ChangeStatusExecutor
	assignTicketUC       usecases.AssignTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	downloadAttachmentUC usecases.DownloadAttachmentExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	addResponseUC usecases.AddResponseExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	downloadAttachmentUC usecases.DownloadAttachmentExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		addResponseUC:        addResponseUC,
		closeTicketUC:        closeTicketUC,
		changeStatusUC:       changeStatusUC,
		assignTicketUC:       assignTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		downloadAttachmentUC: downloadAttachmentUC,
		logger:               logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets (multipart form with optional files)
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	files := formFiles(c, "attachments")
	cmd, closeFiles, err := req.ToCommand(middleware.UserIDFromContext(c), files)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read uploaded files"))
		return
	}
	defer closeFiles()

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponseWithWarnings(c, result, result.Warnings, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:ticket_id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: c.Param("ticket_id"),
		ActorID:  middleware.UserIDFromContext(c),
		IsStaff:  authorization.RoleFromContext(c).IsStaff(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketDetailResponse(result))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		ActorID:  middleware.UserIDFromContext(c),
		IsStaff:  authorization.RoleFromContext(c).IsStaff(),
		Search:   req.Search,
		Status:   req.Status,
		Category: req.Category,
		Priority: req.Priority,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	summaries := make([]TicketSummary, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		summaries = append(summaries, NewTicketSummary(t))
	}

	utils.ListSuccessResponse(c, summaries, result.Total, result.Page, req.PageSize)
}

// AddResponse handles POST /tickets/:ticket_id/responses (multipart form)
func (h *TicketHandler) AddResponse(c *gin.Context) {
	var req AddResponseRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	uploads, closeFiles, err := openUploads(formFiles(c, "attachments"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read uploaded files"))
		return
	}
	defer closeFiles()

	result, err := h.addResponseUC.Execute(c.Request.Context(), usecases.AddResponseCommand{
		TicketID:    c.Param("ticket_id"),
		AuthorID:    middleware.UserIDFromContext(c),
		Message:     req.Message,
		Attachments: uploads,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponseWithWarnings(c, result, result.Warnings, "Response added successfully")
}

// CloseTicket handles POST /tickets/:ticket_id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: c.Param("ticket_id"),
		ActorID:  middleware.UserIDFromContext(c),
		IsStaff:  authorization.RoleFromContext(c).IsStaff(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// ChangeStatus handles PATCH /tickets/:ticket_id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: c.Param("ticket_id"),
		ActorID:  middleware.UserIDFromContext(c),
		IsStaff:  authorization.RoleFromContext(c).IsStaff(),
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AssignTicket handles POST /tickets/:ticket_id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   c.Param("ticket_id"),
		ActorID:    middleware.UserIDFromContext(c),
		IsStaff:    authorization.RoleFromContext(c).IsStaff(),
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// DownloadAttachment handles GET /attachments/:id
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid attachment ID"))
		return
	}

	result, err := h.downloadAttachmentUC.Execute(c.Request.Context(), usecases.DownloadAttachmentCommand{
		AttachmentID: uint(id),
		ActorID:      middleware.UserIDFromContext(c),
		IsStaff:      authorization.RoleFromContext(c).IsStaff(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.DataFromReader(http.StatusOK, result.Size, result.ContentType, result.Content, nil)
}

// formFiles returns the uploaded files for a multipart field, or nil when
// the request carries no multipart form.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
