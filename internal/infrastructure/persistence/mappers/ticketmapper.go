package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"novita/internal/domain/ticket"
	vo "novita/internal/domain/ticket/value_objects"
	"novita/internal/infrastructure/persistence/models"
)

// TicketMapper converts the support entities between their domain and
// persistence shapes. Tags and metadata travel as JSON columns.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ResponseToModel(r *ticket.Response) *models.TicketResponseModel
	ResponseToDomain(model *models.TicketResponseModel) (*ticket.Response, error)
	AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel
	AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	tagsJSON, err := json.Marshal(t.Tags())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	metadataJSON, err := json.Marshal(t.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return &models.TicketModel{
		ID:          t.ID(),
		TicketID:    t.TicketID(),
		OwnerID:     t.OwnerID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		AssigneeID:  t.AssigneeID(),
		Tags:        datatypes.JSON(tagsJSON),
		Metadata:    datatypes.JSON(metadataJSON),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ClosedAt:    t.ClosedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.TicketID,
		model.OwnerID,
		model.Subject,
		model.Description,
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.AssigneeID,
		tags,
		metadata,
		model.CreatedAt,
		model.UpdatedAt,
		model.ClosedAt,
	)
}

func (m *TicketMapperImpl) ResponseToModel(r *ticket.Response) *models.TicketResponseModel {
	return &models.TicketResponseModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		AuthorID:  r.AuthorID(),
		Message:   r.Message(),
		IsStaff:   r.IsStaff(),
		CreatedAt: r.CreatedAt(),
	}
}

func (m *TicketMapperImpl) ResponseToDomain(model *models.TicketResponseModel) (*ticket.Response, error) {
	return ticket.ReconstructResponse(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Message,
		model.IsStaff,
		model.CreatedAt,
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		UploaderID:  a.UploaderID(),
		Filename:    a.Filename(),
		StoragePath: a.StoragePath(),
		Size:        a.Size(),
		ContentType: a.ContentType(),
		CreatedAt:   a.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploaderID,
		model.Filename,
		model.StoragePath,
		model.Size,
		model.ContentType,
		model.CreatedAt,
	)
}
