package blog

import (
	"context"

	vo "novita/internal/domain/blog/value_objects"
)

// PostFilter narrows post listings. Status nil means published-only unless
// AllStatuses is set (author "my posts" and admin listings).
type PostFilter struct {
	Search      string
	CategoryID  *uint
	AuthorID    *uint
	Status      *vo.PostStatus
	AllStatuses bool
	Page        int
	PageSize    int
}

// PostRepository persists posts and maintains their counters. Counter
// mutations are server-side atomic increments so concurrent views and
// toggles never lose updates.
type PostRepository interface {
	Save(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter PostFilter) ([]*Post, int64, error)

	// IncrementViews adds one to the post's view counter in storage.
	IncrementViews(ctx context.Context, postID uint) error
	// IncrementLikes moves the like counter by delta (+1 or -1) in storage.
	IncrementLikes(ctx context.Context, postID uint, delta int) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	// ListApprovedByPost returns approved comments for a post, replies
	// included, ordered oldest first.
	ListApprovedByPost(ctx context.Context, postID uint) ([]*Comment, error)
}

// LikeRepository persists the unique (post, user) like pairs.
type LikeRepository interface {
	// Create inserts the pair; a duplicate pair yields a conflict error.
	Create(ctx context.Context, like *Like) error
	// Delete removes the pair, reporting whether a row existed.
	Delete(ctx context.Context, postID, userID uint) (bool, error)
	Exists(ctx context.Context, postID, userID uint) (bool, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
