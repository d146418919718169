package repositories

import (
	"errors"
	"sort"

	"corkboard/app/models"
	"corkboard/app/storage"
)

const (
	postsFile = "posts.json"
	postsKey  = "posts"
)

// FilePostRepository implements PostRepository over a JSON collection
// file.
type FilePostRepository struct {
	posts *storage.Collection[*models.Post]
}

// NewFilePostRepository creates a FilePostRepository backed by posts.json
// inside store's data directory.
func NewFilePostRepository(store *storage.Store, locks *storage.LockTable) *FilePostRepository {
	return &FilePostRepository{
		posts: storage.NewCollection[*models.Post](store, locks, postsFile, postsKey),
	}
}

// List returns all posts, newest first. The sort is reapplied on every
// read; the file makes no ordering promise.
func (r *FilePostRepository) List() ([]*models.Post, error) {
	posts, err := r.posts.LoadAll()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// ListPaged returns the requested slice of the sorted post list. Page and
// pageSize are used as given: an out-of-range page yields an empty slice,
// not an error. Callers that want clamping do it above this layer.
func (r *FilePostRepository) ListPaged(page, pageSize int) (*Page, error) {
	posts, err := r.List()
	if err != nil {
		return nil, err
	}

	totalCount := len(posts)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	items := []*models.Post{}
	start := (page - 1) * pageSize
	if start >= 0 && start < totalCount && pageSize > 0 {
		end := start + pageSize
		if end > totalCount {
			end = totalCount
		}
		items = posts[start:end]
	}

	return &Page{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}

// GetByID returns the post with the given id, or ErrNotFound. As an
// observable side effect the post's view counter is incremented and
// persisted before the post is returned.
func (r *FilePostRepository) GetByID(id int) (*models.Post, error) {
	var found *models.Post
	err := r.posts.Update(func(posts []*models.Post) ([]*models.Post, error) {
		for _, p := range posts {
			if p.ID == id {
				p.Views++
				found = p
				return posts, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create assigns the next id and the creation timestamp, then appends the
// post. Ids are monotonically increasing and never reused.
func (r *FilePostRepository) Create(post *models.Post) error {
	return r.posts.Update(func(posts []*models.Post) ([]*models.Post, error) {
		post.ID = storage.NextID(posts)
		post.BeforeCreate()
		return append(posts, post), nil
	})
}

// Update merges the given fields into the post with the given id and
// saves. Returns ErrNotFound when the id is absent; the file is then left
// untouched.
func (r *FilePostRepository) Update(id int, update PostUpdate) (*models.Post, error) {
	var updated *models.Post
	err := r.posts.Update(func(posts []*models.Post) ([]*models.Post, error) {
		for _, p := range posts {
			if p.ID == id {
				if update.Title != nil {
					p.Title = *update.Title
				}
				if update.Content != nil {
					p.Content = *update.Content
				}
				if update.Author != nil {
					p.Author = *update.Author
				}
				updated = p
				return posts, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the post with the given id and reports whether a record
// was actually removed. Comments referencing the post are not touched.
func (r *FilePostRepository) Delete(id int) (bool, error) {
	removed := false
	err := r.posts.Update(func(posts []*models.Post) ([]*models.Post, error) {
		kept := posts[:0]
		for _, p := range posts {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
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

func sortNewestFirst(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt.Time)
	})
}
