package value_objects

import "fmt"

// PostStatus drives post visibility: published posts are public, drafts are
// visible to their author only, archived posts are hidden from everyone,
// the author included.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

var validPostStatuses = map[PostStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

func (ps PostStatus) String() string {
	return string(ps)
}

func (ps PostStatus) IsValid() bool {
	return validPostStatuses[ps]
}

func (ps PostStatus) IsDraft() bool {
	return ps == StatusDraft
}

func (ps PostStatus) IsPublished() bool {
	return ps == StatusPublished
}

func (ps PostStatus) IsArchived() bool {
	return ps == StatusArchived
}

func NewPostStatus(s string) (PostStatus, error) {
	ps := PostStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid post status: %s", s)
	}
	return ps, nil
}
