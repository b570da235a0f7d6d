package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"novita/internal/domain/ticket"
	"novita/internal/infrastructure/persistence/mappers"
	"novita/internal/infrastructure/persistence/models"
	"novita/internal/shared/db"
)

type ResponseRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewResponseRepository(gdb *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ResponseRepository) Create(ctx context.Context, resp *ticket.Response) error {
	model := r.mapper.ResponseToModel(resp)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}

	return resp.SetID(model.ID)
}

func (r *ResponseRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	var rows []models.TicketResponseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	responses := make([]*ticket.Response, 0, len(rows))
	for i := range rows {
		resp, err := r.mapper.ResponseToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map response %d: %w", rows[i].ID, err)
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
