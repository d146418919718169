package services

import (
	"fmt"

	"corkboard/app/models"
	"corkboard/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment validates and stores a new comment. The referenced post
// is not required to exist; there is no referential integrity between
// the two collections.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := validateComment(comment); err != nil {
		return err
	}
	return s.commentRepo.Create(comment)
}

// ListPostComments retrieves the comments for a post, oldest first.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

// CountPostComments returns the number of comments on a post.
func (s *CommentService) CountPostComments(postID int) (int, error) {
	return s.commentRepo.CountByPost(postID)
}

// DeleteComment removes a comment and reports whether it existed.
func (s *CommentService) DeleteComment(id int) (bool, error) {
	return s.commentRepo.Delete(id)
}

// validateComment checks the presence of a comment's required fields
func validateComment(comment *models.Comment) error {
	if comment.PostID <= 0 {
		return fmt.Errorf("%w: postId is required", ErrInvalid)
	}
	if comment.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if comment.Author == "" {
		return fmt.Errorf("%w: author is required", ErrInvalid)
	}
	return nil
}
