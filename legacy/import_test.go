package legacy

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"corkboard/app/models"
	"corkboard/app/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLegacyDB(t *testing.T, dbPath string) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	err = db.Update(func(txn *badger.Txn) error {
		for i := 1; i <= 3; i++ {
			post := legacyPost{
				ID:        i,
				Title:     fmt.Sprintf("Post %d", i),
				Content:   "legacy content",
				Author:    "alice",
				CreatedAt: created.Add(time.Duration(i) * time.Hour),
			}
			if i == 2 {
				post.Author = ""
			}
			val, err := json.Marshal(post)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(fmt.Sprintf("post:%d", i)), val); err != nil {
				return err
			}
		}

		comment := legacyComment{
			ID:        1,
			PostID:    1,
			Author:    "bob",
			Content:   "legacy comment",
			CreatedAt: created,
		}
		val, err := json.Marshal(comment)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte("comment:1"), val); err != nil {
			return err
		}

		// Unrelated keys must be skipped.
		return txn.Set([]byte("session:abc"), []byte(`{"token":"x"}`))
	})
	require.NoError(t, err)
}

func TestImport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "badger")
	writeLegacyDB(t, dbPath)

	dataDir := t.TempDir()
	store := storage.NewStore(dataDir)
	locks := storage.NewLockTable()

	postCount, commentCount, err := Import(dbPath, store, locks)
	require.NoError(t, err)
	assert.Equal(t, 3, postCount)
	assert.Equal(t, 1, commentCount)

	posts := storage.NewCollection[*models.Post](store, locks, "posts.json", "posts")
	imported, err := posts.LoadAll()
	require.NoError(t, err)
	require.Len(t, imported, 3)

	raw, err := store.Read("posts.json")
	require.NoError(t, err)
	var envelope struct {
		Metadata storage.Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, 3, envelope.Metadata.LastID)
	assert.Equal(t, 3, envelope.Metadata.TotalCount)

	assert.Equal(t, 1, imported[0].ID)
	assert.Equal(t, "Post 1", imported[0].Title)
	assert.Equal(t, "alice", imported[0].Author)
	assert.Equal(t, 0, imported[0].Views)
	assert.Equal(t, "unknown", imported[1].Author)

	comments := storage.NewCollection[*models.Comment](store, locks, "comments.json", "comments")
	importedComments, err := comments.LoadAll()
	require.NoError(t, err)
	require.Len(t, importedComments, 1)
	assert.Equal(t, 1, importedComments[0].PostID)
	assert.Equal(t, "bob", importedComments[0].Author)
}

func TestImportMissingDatabase(t *testing.T) {
	dataDir := t.TempDir()
	store := storage.NewStore(dataDir)
	locks := storage.NewLockTable()

	_, _, err := Import(filepath.Join(t.TempDir(), "nope"), store, locks)
	assert.Error(t, err)
}

func TestConvertPostDefaults(t *testing.T) {
	p := convertPost(legacyPost{ID: 9, Title: "t", Content: "c"})
	assert.Equal(t, "unknown", p.Author)
	assert.Equal(t, 0, p.Views)
}
