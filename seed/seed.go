// Package seed generates the sample dataset used for local development
// and writes it to the JSON data files.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"corkboard/app/models"
	"corkboard/app/storage"
)

// PostCount is the number of sample posts generated.
const PostCount = 100

var sampleTitles = []string{
	"Welcome to the bulletin board!",
	"Getting started guide",
	"Tips for writing good posts",
	"Community guidelines",
	"How to format your content",
	"Server-side rendering explained",
	"Working with the JSON API",
	"Connecting external tools",
	"Authentication roadmap",
	"Performance tuning notes",
	"Improving accessibility",
	"Search optimization ideas",
	"Writing useful bug reports",
	"Continuous deployment setup",
	"Running under Docker",
	"Cloud hosting options",
	"GraphQL vs REST discussion",
	"Microservice architecture thread",
	"Frontend trends this year",
	"Productivity tooling picks",
}

var sampleContents = []string{
	"Detailed content goes here. Useful information and tips are shared.",
	"This post walks through a worked example in detail.",
	"A tutorial that beginners can follow along with easily.",
	"Covers material you can apply directly in practice.",
	"Introduces current trends and best practices.",
}

var sampleAuthors = []string{
	"admin", "developer", "user1", "user2", "user3", "expert", "newbie", "senior-dev",
}

var sampleCommentTexts = []string{
	"First comment!",
	"Really helpful, thanks for sharing.",
	"I ran into the same thing last week.",
	"Could you expand on the second point?",
	"Bookmarking this one.",
}

// GeneratePosts builds the sample post set: cyclic titles, contents and
// authors, three posts per day starting 2024-01-01, random view counts.
func GeneratePosts() []*models.Post {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	posts := make([]*models.Post, 0, PostCount)
	for i := 1; i <= PostCount; i++ {
		dayOffset := (i - 1) / 3
		posts = append(posts, &models.Post{
			ID:        i,
			Title:     fmt.Sprintf("%s (%d)", sampleTitles[(i-1)%len(sampleTitles)], i),
			Content:   fmt.Sprintf("%s\n\nPost number: %d", sampleContents[(i-1)%len(sampleContents)], i),
			Author:    sampleAuthors[(i-1)%len(sampleAuthors)],
			CreatedAt: models.NewTimestamp(start.AddDate(0, 0, dayOffset)),
			Views:     rand.Intn(100),
		})
	}
	return posts
}

// GenerateComments builds sample comments: every other post gets up to
// two comments, timestamped after the post itself.
func GenerateComments(posts []*models.Post) []*models.Comment {
	comments := []*models.Comment{}
	id := 1
	for _, p := range posts {
		if p.ID%2 == 0 {
			continue
		}
		n := p.ID%2 + p.ID%3 // 1 or 2 for odd ids
		if n > 2 {
			n = 2
		}
		for j := 0; j < n; j++ {
			comments = append(comments, &models.Comment{
				ID:        id,
				PostID:    p.ID,
				Content:   sampleCommentTexts[(id-1)%len(sampleCommentTexts)],
				Author:    sampleAuthors[(id+2)%len(sampleAuthors)],
				CreatedAt: models.NewTimestamp(p.CreatedAt.Add(time.Duration(j+1) * time.Hour)),
			})
			id++
		}
	}
	return comments
}

// Run writes the sample dataset to posts.json and comments.json inside
// store's data directory, replacing any existing content.
func Run(store *storage.Store, locks *storage.LockTable) (postCount, commentCount int, err error) {
	posts := GeneratePosts()
	comments := GenerateComments(posts)

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
