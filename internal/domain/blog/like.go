package blog

import (
	"fmt"
	"time"
)

// Like is the (post, user) pair behind the like toggle. The pair is unique
// at the storage layer; that unique constraint is the concurrency mechanism
// for toggling, not an application-level check.
type Like struct {
	id        uint
	postID    uint
	userID    uint
	createdAt time.Time
}

func NewLike(postID, userID uint) (*Like, error) {
	if postID == 0 {
		return nil, fmt.Errorf("post ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Like{
		postID:    postID,
		userID:    userID,
		createdAt: time.Now(),
	}, nil
}

func (l *Like) ID() uint {
	return l.id
}

func (l *Like) PostID() uint {
	return l.postID
}

func (l *Like) UserID() uint {
	return l.userID
}

func (l *Like) CreatedAt() time.Time {
	return l.createdAt
}
