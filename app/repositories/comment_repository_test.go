package repositories

import (
	"testing"
	"time"

	"corkboard/app/models"
	"corkboard/app/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentRepo(t *testing.T) *FileCommentRepository {
	store := storage.NewStore(t.TempDir())
	return NewFileCommentRepository(store, storage.NewLockTable())
}

func newComment(postID int, content string) *models.Comment {
	return &models.Comment{PostID: postID, Content: content, Author: "commenter"}
}

func TestCommentRepositoryCreate(t *testing.T) {
	repo := newCommentRepo(t)

	first := newComment(1, "first")
	require.NoError(t, repo.Create(first))
	assert.Equal(t, 1, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := newComment(1, "second")
	require.NoError(t, repo.Create(second))
	assert.Equal(t, 2, second.ID)
}

func TestCommentRepositoryListByPost(t *testing.T) {
	repo := newCommentRepo(t)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	// Insert out of chronological order across two posts.
	for _, c := range []struct {
		postID int
		text   string
		offset time.Duration
	}{
		{1, "middle", time.Hour},
		{2, "other post", 0},
		{1, "latest", 2 * time.Hour},
		{1, "earliest", 0},
	} {
		comment := newComment(c.postID, c.text)
		comment.CreatedAt = models.NewTimestamp(base.Add(c.offset))
		require.NoError(t, repo.Create(comment))
	}

	t.Run("filters by post and sorts oldest first", func(t *testing.T) {
		comments, err := repo.ListByPost(1)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "earliest", comments[0].Content)
		assert.Equal(t, "middle", comments[1].Content)
		assert.Equal(t, "latest", comments[2].Content)
	})

	t.Run("post without comments yields an empty slice", func(t *testing.T) {
		comments, err := repo.ListByPost(99)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentRepositoryCountByPost(t *testing.T) {
	repo := newCommentRepo(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(newComment(1, "on post 1")))
	}
	require.NoError(t, repo.Create(newComment(2, "on post 2")))

	count, err := repo.CountByPost(1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = repo.CountByPost(99)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCommentRepositoryDelete(t *testing.T) {
	repo := newCommentRepo(t)
	require.NoError(t, repo.Create(newComment(1, "doomed")))

	removed, err := repo.Delete(1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCommentRepositoryIDsNotReused(t *testing.T) {
	repo := newCommentRepo(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(newComment(1, "c")))
	}
	// Deleting a lower id must not free it for reuse; the next id is one
	// past the highest id ever assigned.
	removed, err := repo.Delete(2)
	require.NoError(t, err)
	require.True(t, removed)

	next := newComment(1, "after delete")
	require.NoError(t, repo.Create(next))
	assert.Equal(t, 4, next.ID)
}
