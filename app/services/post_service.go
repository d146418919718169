package services

import (
	"errors"
	"fmt"

	"corkboard/app/models"
	"corkboard/app/repositories"
)

// ErrInvalid marks rejections caused by bad input; handlers map it to a
// 400 response.
var ErrInvalid = errors.New("invalid input")

const (
	// DefaultPageSize is used when a caller does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize caps a caller-supplied page size.
	MaxPageSize = 100
)

// PostService handles business logic for posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost validates and stores a new post. Id, creation time and the
// view counter are assigned by the storage layer, never by the caller.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := validatePost(post); err != nil {
		return err
	}
	return s.postRepo.Create(post)
}

// GetPost retrieves a post by id together with its comments in
// chronological order. Reading the post increments its view counter.
func (s *PostService) GetPost(id int) (*models.Post, []*models.Comment, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return post, comments, nil
}

// ListPosts retrieves a page of posts, newest first. Page defaults to 1
// and pageSize to DefaultPageSize; pageSize is capped at MaxPageSize.
func (s *PostService) ListPosts(page, pageSize int) (*repositories.Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return s.postRepo.ListPaged(page, pageSize)
}

// UpdatePost merges the given fields into an existing post. Empty
// strings for provided fields are rejected.
func (s *PostService) UpdatePost(id int, update repositories.PostUpdate) (*models.Post, error) {
	if update.Title != nil && *update.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalid)
	}
	if update.Content != nil && *update.Content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrInvalid)
	}
	if update.Author != nil && *update.Author == "" {
		return nil, fmt.Errorf("%w: author cannot be empty", ErrInvalid)
	}
	return s.postRepo.Update(id, update)
}

// DeletePost removes a post and reports whether it existed. Comments
// referencing the post are deliberately left in place; the data model
// tolerates comments on deleted posts.
func (s *PostService) DeletePost(id int) (bool, error) {
	return s.postRepo.Delete(id)
}

// validatePost checks the presence of a post's required fields
func validatePost(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if post.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if post.Author == "" {
		return fmt.Errorf("%w: author is required", ErrInvalid)
	}
	return nil
}
