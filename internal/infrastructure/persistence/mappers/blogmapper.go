package mappers

import (
	"novita/internal/domain/blog"
	vo "novita/internal/domain/blog/value_objects"
	"novita/internal/infrastructure/persistence/models"
)

// BlogMapper converts the content entities between their domain and
// persistence shapes.
type BlogMapper interface {
	PostToModel(p *blog.Post) *models.PostModel
	PostToDomain(model *models.PostModel) (*blog.Post, error)
	CommentToModel(c *blog.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*blog.Comment, error)
	LikeToModel(l *blog.Like) *models.PostLikeModel
	CategoryToModel(c *blog.Category) *models.CategoryModel
	CategoryToDomain(model *models.CategoryModel) (*blog.Category, error)
}

type BlogMapperImpl struct{}

func NewBlogMapper() BlogMapper {
	return &BlogMapperImpl{}
}

func (m *BlogMapperImpl) PostToModel(p *blog.Post) *models.PostModel {
	var categoryID *uint
	if p.CategoryID() != 0 {
		id := p.CategoryID()
		categoryID = &id
	}

	return &models.PostModel{
		ID:          p.ID(),
		Title:       p.Title(),
		Slug:        p.Slug(),
		AuthorID:    p.AuthorID(),
		CategoryID:  categoryID,
		Excerpt:     p.Excerpt(),
		Content:     p.Content(),
		Status:      p.Status().String(),
		Featured:    p.Featured(),
		ViewsCount:  p.ViewsCount(),
		LikesCount:  p.LikesCount(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		PublishedAt: p.PublishedAt(),
	}
}

func (m *BlogMapperImpl) PostToDomain(model *models.PostModel) (*blog.Post, error) {
	status, err := vo.NewPostStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var categoryID uint
	if model.CategoryID != nil {
		categoryID = *model.CategoryID
	}

	return blog.ReconstructPost(
		model.ID,
		model.Title,
		model.Slug,
		model.AuthorID,
		categoryID,
		model.Excerpt,
		model.Content,
		status,
		model.Featured,
		model.ViewsCount,
		model.LikesCount,
		model.CreatedAt,
		model.UpdatedAt,
		model.PublishedAt,
	)
}

func (m *BlogMapperImpl) CommentToModel(c *blog.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		PostID:    c.PostID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		ParentID:  c.ParentID(),
		Approved:  c.Approved(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *BlogMapperImpl) CommentToDomain(model *models.CommentModel) (*blog.Comment, error) {
	return blog.ReconstructComment(
		model.ID,
		model.PostID,
		model.AuthorID,
		model.Content,
		model.ParentID,
		model.Approved,
		model.CreatedAt,
	)
}

func (m *BlogMapperImpl) LikeToModel(l *blog.Like) *models.PostLikeModel {
	return &models.PostLikeModel{
		ID:        l.ID(),
		PostID:    l.PostID(),
		UserID:    l.UserID(),
		CreatedAt: l.CreatedAt(),
	}
}

func (m *BlogMapperImpl) CategoryToModel(c *blog.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
	}
}

func (m *BlogMapperImpl) CategoryToDomain(model *models.CategoryModel) (*blog.Category, error) {
	return blog.ReconstructCategory(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.CreatedAt,
	)
}
