package repositories

import (
	"errors"
	"sort"

	"corkboard/app/models"
	"corkboard/app/storage"
)

const (
	commentsFile = "comments.json"
	commentsKey  = "comments"
)

// FileCommentRepository implements CommentRepository over a JSON
// collection file.
type FileCommentRepository struct {
	comments *storage.Collection[*models.Comment]
}

// NewFileCommentRepository creates a FileCommentRepository backed by
// comments.json inside store's data directory.
func NewFileCommentRepository(store *storage.Store, locks *storage.LockTable) *FileCommentRepository {
	return &FileCommentRepository{
		comments: storage.NewCollection[*models.Comment](store, locks, commentsFile, commentsKey),
	}
}

// ListByPost returns the comments for a post in chronological order,
// oldest first. The post itself need not exist; comments may outlive it.
func (r *FileCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	comments, err := r.comments.LoadAll()
	if err != nil {
		return nil, err
	}

	matched := []*models.Comment{}
	for _, c := range comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt.Time)
	})
	return matched, nil
}

// CountByPost returns the number of comments on a post. It skips the
// sort that ListByPost pays for, but still loads the full collection.
func (r *FileCommentRepository) CountByPost(postID int) (int, error) {
	comments, err := r.comments.LoadAll()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, c := range comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

// Create assigns the next id and the creation timestamp, then appends the
// comment.
func (r *FileCommentRepository) Create(comment *models.Comment) error {
	return r.comments.Update(func(comments []*models.Comment) ([]*models.Comment, error) {
		comment.ID = storage.NextID(comments)
		comment.BeforeCreate()
		return append(comments, comment), nil
	})
}

// Delete removes the comment with the given id and reports whether a
// record was actually removed.
func (r *FileCommentRepository) Delete(id int) (bool, error) {
	removed := false
	err := r.comments.Update(func(comments []*models.Comment) ([]*models.Comment, error) {
		kept := comments[:0]
		for _, c := range comments {
			if c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		if !removed {
			return nil, ErrNotFound
		}
		return kept, nil
	})
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return removed, nil
}
