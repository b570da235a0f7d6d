package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "novita/internal/interfaces/http/handlers/ticket"
	"novita/internal/interfaces/http/middleware"
	"novita/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action endpoints before the parameterized get.
		tickets.POST("/:ticket_id/responses", config.TicketHandler.AddResponse)
		tickets.POST("/:ticket_id/close", config.TicketHandler.CloseTicket)
		tickets.PATCH("/:ticket_id/status", config.TicketHandler.ChangeStatus)
		tickets.POST("/:ticket_id/assign",
			authorization.RequireStaff(),
			config.TicketHandler.AssignTicket)

		tickets.GET("/:ticket_id", config.TicketHandler.GetTicket)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(config.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id", config.TicketHandler.DownloadAttachment)
	}
}
