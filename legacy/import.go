// Package legacy imports records from the old Badger-backed store into
// the JSON data files. The old store keyed entities as "post:<id>" and
// "comment:<id>" with capitalized JSON field names.
package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"corkboard/app/models"
	"corkboard/app/storage"

	"github.com/dgraph-io/badger/v4"
)

const (
	postKeyPrefix    = "post:"
	commentKeyPrefix = "comment:"
)

// legacyPost matches the JSON the old store wrote for posts. It had no
// author or view counter.
type legacyPost struct {
	ID        int
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
}

type legacyComment struct {
	ID        int
	PostID    int
	Author    string
	Content   string
	CreatedAt time.Time
}

// Import reads every post and comment from the Badger database at dbPath
// and writes them to posts.json and comments.json inside store's data
// directory, replacing any existing content. Records missing an author
// are attributed to "unknown".
func Import(dbPath string, store *storage.Store, locks *storage.LockTable) (postCount, commentCount int, err error) {
	opts := badger.DefaultOptions(dbPath).
		WithLogger(nil).
		WithReadOnly(true)
	db, err := badger.Open(opts)
	if err != nil {
		return 0, 0, fmt.Errorf("open legacy database: %w", err)
	}
	defer db.Close()

	posts, comments, err := readAll(db)
	if err != nil {
		return 0, 0, err
	}

	postCollection := storage.NewCollection[*models.Post](store, locks, "posts.json", "posts")
	if err := postCollection.SaveAll(posts); err != nil {
		return 0, 0, fmt.Errorf("save posts: %w", err)
	}

	commentCollection := storage.NewCollection[*models.Comment](store, locks, "comments.json", "comments")
	if err := commentCollection.SaveAll(comments); err != nil {
		return 0, 0, fmt.Errorf("save comments: %w", err)
	}

	return len(posts), len(comments), nil
}

func readAll(db *badger.DB) ([]*models.Post, []*models.Comment, error) {
	posts := []*models.Post{}
	comments := []*models.Comment{}

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()

			switch {
			case bytes.HasPrefix(key, []byte(postKeyPrefix)):
				var lp legacyPost
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &lp)
				}); err != nil {
					return fmt.Errorf("decode %s: %w", key, err)
				}
				posts = append(posts, convertPost(lp))

			case bytes.HasPrefix(key, []byte(commentKeyPrefix)):
				var lc legacyComment
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &lc)
				}); err != nil {
					return fmt.Errorf("decode %s: %w", key, err)
				}
				comments = append(comments, convertComment(lc))
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return posts, comments, nil
}

func convertPost(lp legacyPost) *models.Post {
	author := lp.Author
	if author == "" {
		author = "unknown"
	}
	return &models.Post{
		ID:        lp.ID,
		Title:     lp.Title,
		Content:   lp.Content,
		Author:    author,
		CreatedAt: models.NewTimestamp(lp.CreatedAt),
		Views:     0,
	}
}

func convertComment(lc legacyComment) *models.Comment {
	author := lc.Author
	if author == "" {
		author = "unknown"
	}
	return &models.Comment{
		ID:        lc.ID,
		PostID:    lc.PostID,
		Content:   lc.Content,
		Author:    author,
		CreatedAt: models.NewTimestamp(lc.CreatedAt),
	}
}
