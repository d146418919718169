package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Post represents a bulletin-board post.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	CreatedAt Timestamp `json:"createdAt"`
	Views     int       `json:"views" validate:"gte=0"`
}

// Comment represents a comment on a post. Comments are immutable once
// created and may outlive the post they reference.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"postId" validate:"required,gt=0"`
	Content   string    `json:"content" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	CreatedAt Timestamp `json:"createdAt"`
}

// RecordID returns the post's unique id.
func (p *Post) RecordID() int { return p.ID }

// RecordID returns the comment's unique id.
func (c *Comment) RecordID() int { return c.ID }
