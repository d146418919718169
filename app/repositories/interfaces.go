package repositories

import (
	"errors"

	"corkboard/app/models"
)

// ErrNotFound signals that no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Page is one page of posts plus pagination bookkeeping.
type Page struct {
	Items       []*models.Post `json:"posts"`
	TotalCount  int            `json:"totalCount"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	PageSize    int            `json:"pageSize"`
}

// PostUpdate carries the fields of a partial post update. Nil fields are
// left untouched.
type PostUpdate struct {
	Title   *string
	Content *string
	Author  *string
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	List() ([]*models.Post, error)
	ListPaged(page, pageSize int) (*Page, error)
	GetByID(id int) (*models.Post, error)
	Create(post *models.Post) error
	Update(id int, update PostUpdate) (*models.Post, error)
	Delete(id int) (bool, error)
}

// CommentRepository defines the interface for comment data access.
// Comments have no update operation: they are immutable once created.
type CommentRepository interface {
	ListByPost(postID int) ([]*models.Comment, error)
	CountByPost(postID int) (int, error)
	Create(comment *models.Comment) error
	Delete(id int) (bool, error)
}
