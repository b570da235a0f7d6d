package blog

import (
	"fmt"
	"strings"
	"time"

	vo "novita/internal/domain/blog/value_objects"
)

// readingWordsPerMinute is the assumed reading speed for the derived
// reading-time field.
const readingWordsPerMinute = 200

// Post is the community-post aggregate. The slug is the public lookup key
// and must be unique; counters are maintained server-side by the repository
// so concurrent views and likes never lose updates.
type Post struct {
	id         uint
	title      string
	slug       string
	authorID   uint
	categoryID uint
	excerpt    string
	content    string
	status     vo.PostStatus
	featured   bool
	viewsCount int
	likesCount int

	createdAt   time.Time
	updatedAt   time.Time
	publishedAt *time.Time
}

// NewPost creates a post. Status defaults to draft when empty; publishing
// at creation stamps publishedAt.
func NewPost(title, slug string, authorID, categoryID uint, excerpt, content string, status vo.PostStatus) (*Post, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}
	if len(slug) > 200 {
		return nil, fmt.Errorf("slug exceeds maximum length of 200 characters")
	}
	if len(excerpt) > 300 {
		return nil, fmt.Errorf("excerpt exceeds maximum length of 300 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if status == "" {
		status = vo.StatusDraft
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	now := time.Now()
	p := &Post{
		title:      title,
		slug:       slug,
		authorID:   authorID,
		categoryID: categoryID,
		excerpt:    excerpt,
		content:    content,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}
	if status.IsPublished() {
		p.publishedAt = &now
	}
	return p, nil
}

// ReconstructPost rebuilds a post from persistence.
func ReconstructPost(
	id uint,
	title, slug string,
	authorID, categoryID uint,
	excerpt, content string,
	status vo.PostStatus,
	featured bool,
	viewsCount, likesCount int,
	createdAt, updatedAt time.Time,
	publishedAt *time.Time,
) (*Post, error) {
	if id == 0 {
		return nil, fmt.Errorf("post ID cannot be zero")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Post{
		id:          id,
		title:       title,
		slug:        slug,
		authorID:    authorID,
		categoryID:  categoryID,
		excerpt:     excerpt,
		content:     content,
		status:      status,
		featured:    featured,
		viewsCount:  viewsCount,
		likesCount:  likesCount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		publishedAt: publishedAt,
	}, nil
}

func (p *Post) ID() uint {
	return p.id
}

func (p *Post) Title() string {
	return p.title
}

func (p *Post) Slug() string {
	return p.slug
}

func (p *Post) AuthorID() uint {
	return p.authorID
}

func (p *Post) CategoryID() uint {
	return p.categoryID
}

func (p *Post) Excerpt() string {
	return p.excerpt
}

func (p *Post) Content() string {
	return p.content
}

func (p *Post) Status() vo.PostStatus {
	return p.status
}

func (p *Post) Featured() bool {
	return p.featured
}

func (p *Post) ViewsCount() int {
	return p.viewsCount
}

func (p *Post) LikesCount() int {
	return p.likesCount
}

func (p *Post) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Post) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Post) PublishedAt() *time.Time {
	return p.publishedAt
}

func (p *Post) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("post ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("post ID cannot be zero")
	}
	p.id = id
	return nil
}

// VisibleTo is the visibility predicate for normal reads. A false result
// must surface as not-found, never as forbidden, so inaccessible posts are
// indistinguishable from absent ones. Archived posts are invisible to
// everyone, the author included.
func (p *Post) VisibleTo(viewerID uint) bool {
	switch {
	case p.status.IsPublished():
		return true
	case p.status.IsDraft():
		return viewerID != 0 && viewerID == p.authorID
	default:
		return false
	}
}

// IsAuthoredBy reports whether the given user owns this post.
func (p *Post) IsAuthoredBy(userID uint) bool {
	return userID != 0 && p.authorID == userID
}

// PostUpdate carries optional field changes for an edit; nil means keep.
type PostUpdate struct {
	Title    *string
	Excerpt  *string
	Content  *string
	Category *uint
	Featured *bool
}

// Update applies an author edit. The slug is part of the post's public
// identity and does not follow title changes.
func (p *Post) Update(update PostUpdate) error {
	if update.Title != nil {
		if len(*update.Title) == 0 {
			return fmt.Errorf("title is required")
		}
		if len(*update.Title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		p.title = *update.Title
	}
	if update.Excerpt != nil {
		if len(*update.Excerpt) > 300 {
			return fmt.Errorf("excerpt exceeds maximum length of 300 characters")
		}
		p.excerpt = *update.Excerpt
	}
	if update.Content != nil {
		if len(*update.Content) == 0 {
			return fmt.Errorf("content is required")
		}
		p.content = *update.Content
	}
	if update.Category != nil {
		if *update.Category == 0 {
			return fmt.Errorf("category ID is required")
		}
		p.categoryID = *update.Category
	}
	if update.Featured != nil {
		p.featured = *update.Featured
	}
	p.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the post between draft, published, and archived.
// publishedAt is stamped on the first transition into published and kept
// afterwards.
func (p *Post) ChangeStatus(newStatus vo.PostStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if p.status == newStatus {
		return nil
	}

	p.status = newStatus
	p.updatedAt = time.Now()

	if newStatus.IsPublished() && p.publishedAt == nil {
		now := time.Now()
		p.publishedAt = &now
	}
	return nil
}

// ReadingTime returns the estimated reading time in minutes, derived from
// the content word count. Never less than one minute.
func (p *Post) ReadingTime() int {
	words := len(strings.Fields(p.content))
	minutes := (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
