package blog

import (
	"fmt"
	"time"
)

// Comment belongs to a post and optionally replies to exactly one parent
// comment. Threading is a single level deep: replies cannot themselves be
// reply targets. Comments are immutable after creation.
type Comment struct {
	id        uint
	postID    uint
	authorID  uint
	content   string
	parentID  *uint
	approved  bool
	createdAt time.Time
}

func NewComment(postID, authorID uint, content string, parentID *uint) (*Comment, error) {
	if postID == 0 {
		return nil, fmt.Errorf("post ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 2000 {
		return nil, fmt.Errorf("content exceeds maximum length of 2000 characters")
	}
	if parentID != nil && *parentID == 0 {
		return nil, fmt.Errorf("parent comment ID cannot be zero")
	}

	return &Comment{
		postID:    postID,
		authorID:  authorID,
		content:   content,
		parentID:  parentID,
		approved:  true,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(id, postID, authorID uint, content string, parentID *uint, approved bool, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:        id,
		postID:    postID,
		authorID:  authorID,
		content:   content,
		parentID:  parentID,
		approved:  approved,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) PostID() uint {
	return c.postID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) ParentID() *uint {
	return c.parentID
}

func (c *Comment) Approved() bool {
	return c.approved
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) IsReply() bool {
	return c.parentID != nil
}

// CanParent reports whether this comment may be used as the parent of a new
// reply on the given post: it must be an approved top-level comment of that
// same post. Cross-post replies are rejected.
func (c *Comment) CanParent(postID uint) bool {
	return c.approved && !c.IsReply() && c.postID == postID
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
