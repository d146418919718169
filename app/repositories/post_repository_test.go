package repositories

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"corkboard/app/models"
	"corkboard/app/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostRepo(t *testing.T) (*FilePostRepository, *storage.Store) {
	store := storage.NewStore(t.TempDir())
	return NewFilePostRepository(store, storage.NewLockTable()), store
}

func newPost(title string) *models.Post {
	return &models.Post{Title: title, Content: "content for " + title, Author: "tester"}
}

func TestPostRepositoryCreate(t *testing.T) {
	t.Run("ids are monotonic starting at one", func(t *testing.T) {
		repo, _ := newPostRepo(t)

		for i := 1; i <= 5; i++ {
			post := newPost(fmt.Sprintf("post %d", i))
			require.NoError(t, repo.Create(post))
			assert.Equal(t, i, post.ID)
			assert.Equal(t, 0, post.Views)
			assert.False(t, post.CreatedAt.IsZero())
		}
	})

	t.Run("ids are not reused after deletion", func(t *testing.T) {
		repo, _ := newPostRepo(t)

		for i := 1; i <= 3; i++ {
			require.NoError(t, repo.Create(newPost(fmt.Sprintf("post %d", i))))
		}
		removed, err := repo.Delete(2)
		require.NoError(t, err)
		require.True(t, removed)

		post := newPost("after delete")
		require.NoError(t, repo.Create(post))
		assert.Equal(t, 4, post.ID)
	})

	t.Run("concurrent creates lose no posts and assign unique ids", func(t *testing.T) {
		repo, _ := newPostRepo(t)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, repo.Create(newPost(fmt.Sprintf("concurrent %d", i))))
			}()
		}
		wg.Wait()

		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 10)

		seen := map[int]bool{}
		for _, p := range posts {
			assert.False(t, seen[p.ID], "id %d assigned twice", p.ID)
			seen[p.ID] = true
		}
	})
}

func TestPostRepositoryList(t *testing.T) {
	repo, _ := newPostRepo(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		post := newPost(fmt.Sprintf("post %d", i+1))
		post.CreatedAt = models.NewTimestamp(base.Add(time.Duration(i) * time.Minute))
		require.NoError(t, repo.Create(post))
	}

	t.Run("returns posts newest first", func(t *testing.T) {
		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "post 3", posts[0].Title)
		assert.Equal(t, "post 2", posts[1].Title)
		assert.Equal(t, "post 1", posts[2].Title)
	})
}

func TestPostRepositoryListPaged(t *testing.T) {
	repo, _ := newPostRepo(t)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		post := newPost(fmt.Sprintf("post %d", i+1))
		post.CreatedAt = models.NewTimestamp(base.Add(time.Duration(i) * time.Minute))
		require.NoError(t, repo.Create(post))
	}

	t.Run("full page", func(t *testing.T) {
		page, err := repo.ListPaged(1, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 10, page.PageSize)
		// Newest first: post 25 leads the first page.
		assert.Equal(t, "post 25", page.Items[0].Title)
	})

	t.Run("partial last page", func(t *testing.T) {
		page, err := repo.ListPaged(3, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, "post 1", page.Items[4].Title)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page, err := repo.ListPaged(4, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
	})
}

func TestPostRepositoryGetByID(t *testing.T) {
	t.Run("increments and persists the view counter", func(t *testing.T) {
		repo, store := newPostRepo(t)
		require.NoError(t, repo.Create(newPost("viewed")))

		for i := 1; i <= 3; i++ {
			post, err := repo.GetByID(1)
			require.NoError(t, err)
			assert.Equal(t, i, post.Views)
		}

		// The increments must survive a reload from disk.
		reloaded := NewFilePostRepository(store, storage.NewLockTable())
		posts, err := reloaded.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, 3, posts[0].Views)
	})

	t.Run("missing id yields ErrNotFound without a write", func(t *testing.T) {
		repo, store := newPostRepo(t)
		require.NoError(t, repo.Create(newPost("only")))

		before, err := store.Read("posts.json")
		require.NoError(t, err)

		_, err = repo.GetByID(99)
		assert.ErrorIs(t, err, ErrNotFound)

		after, err := store.Read("posts.json")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestPostRepositoryUpdate(t *testing.T) {
	repo, _ := newPostRepo(t)
	original := newPost("original")
	require.NoError(t, repo.Create(original))

	t.Run("merges only the provided fields", func(t *testing.T) {
		title := "updated"
		post, err := repo.Update(1, PostUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "updated", post.Title)
		assert.Equal(t, original.Content, post.Content)
		assert.True(t, post.CreatedAt.Equal(original.CreatedAt.Time))
	})

	t.Run("missing id yields ErrNotFound", func(t *testing.T) {
		title := "nope"
		_, err := repo.Update(42, PostUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepositoryDelete(t *testing.T) {
	repo, _ := newPostRepo(t)
	require.NoError(t, repo.Create(newPost("to delete")))

	removed, err := repo.Delete(1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(1)
	require.NoError(t, err)
	assert.False(t, removed)

	posts, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepositoryPersistence(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	repo := NewFilePostRepository(store, storage.NewLockTable())

	post := newPost("durable")
	require.NoError(t, repo.Create(post))

	// A fresh repository over the same directory sees the same data,
	// including the exact creation timestamp.
	reloaded := NewFilePostRepository(store, storage.NewLockTable())
	posts, err := reloaded.List()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.Title, posts[0].Title)
	assert.True(t, posts[0].CreatedAt.Equal(post.CreatedAt.Time))
}
