package blog

import (
	"time"

	"github.com/gin-gonic/gin"

	"novita/internal/application/blog/usecases"
	"novita/internal/domain/blog"
	"novita/internal/shared/utils"
)

type CreatePostRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Slug       string `json:"slug" binding:"omitempty,slug,max=220"`
	CategoryID uint   `json:"category_id"`
	Excerpt    string `json:"excerpt" binding:"max=300"`
	Content    string `json:"content" binding:"required"`
	Status     string `json:"status"`
	Featured   bool   `json:"featured"`
}

func (r CreatePostRequest) ToCommand(authorID uint) usecases.CreatePostCommand {
	return usecases.CreatePostCommand{
		Title:      r.Title,
		Slug:       r.Slug,
		AuthorID:   authorID,
		CategoryID: r.CategoryID,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		Status:     r.Status,
		Featured:   r.Featured,
	}
}

type UpdatePostRequest struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	CategoryID *uint   `json:"category_id"`
	Featured   *bool   `json:"featured"`
	Status     *string `json:"status"`
}

func (r UpdatePostRequest) ToCommand(postID, actorID uint) usecases.UpdatePostCommand {
	return usecases.UpdatePostCommand{
		PostID:     postID,
		ActorID:    actorID,
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		Featured:   r.Featured,
		Status:     r.Status,
	}
}

type AddCommentRequest struct {
	Content  string `json:"content" binding:"required,max=2000"`
	ParentID *uint  `json:"parent_id"`
}

type ListPostsRequest struct {
	Search     string
	CategoryID *uint
	Mine       bool
	Page       int
	PageSize   int
}

func parseListPostsRequest(c *gin.Context) ListPostsRequest {
	pagination := utils.ParsePagination(c)

	req := ListPostsRequest{
		Search:   c.Query("search"),
		Mine:     c.Query("mine") == "true",
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if raw := c.Query("category_id"); raw != "" {
		if id := parseUint(raw); id != 0 {
			req.CategoryID = &id
		}
	}

	return req
}

type PostSummary struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	AuthorID    uint       `json:"author_id"`
	CategoryID  uint       `json:"category_id,omitempty"`
	Excerpt     string     `json:"excerpt"`
	Status      string     `json:"status"`
	Featured    bool       `json:"featured"`
	ViewsCount  int        `json:"views_count"`
	LikesCount  int        `json:"likes_count"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func NewPostSummary(p *blog.Post) PostSummary {
	return PostSummary{
		ID:          p.ID(),
		Title:       p.Title(),
		Slug:        p.Slug(),
		AuthorID:    p.AuthorID(),
		CategoryID:  p.CategoryID(),
		Excerpt:     p.Excerpt(),
		Status:      p.Status().String(),
		Featured:    p.Featured(),
		ViewsCount:  p.ViewsCount(),
		LikesCount:  p.LikesCount(),
		CreatedAt:   p.CreatedAt(),
		PublishedAt: p.PublishedAt(),
	}
}

type CommentResponse struct {
	ID        uint              `json:"id"`
	AuthorID  uint              `json:"author_id"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	Replies   []CommentResponse `json:"replies,omitempty"`
}

func newCommentResponses(views []usecases.CommentView) []CommentResponse {
	out := make([]CommentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, CommentResponse{
			ID:        v.ID,
			AuthorID:  v.AuthorID,
			Content:   v.Content,
			CreatedAt: v.CreatedAt,
			Replies:   newCommentResponses(v.Replies),
		})
	}
	return out
}

type PostDetailResponse struct {
	PostSummary
	ContentHTML string            `json:"content_html"`
	ReadingTime int               `json:"reading_time"`
	Liked       bool              `json:"liked"`
	Comments    []CommentResponse `json:"comments"`
}

func NewPostDetailResponse(result *usecases.ViewPostResult) PostDetailResponse {
	return PostDetailResponse{
		PostSummary: NewPostSummary(result.Post),
		ContentHTML: result.ContentHTML,
		ReadingTime: result.ReadingTime,
		Liked:       result.Liked,
		Comments:    newCommentResponses(result.Comments),
	}
}
