package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"corkboard/app/models"
	"corkboard/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type createCommentRequest struct {
	PostID  int    `json:"postId"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Index handles listing the comments of a post, oldest first
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
		"count":    len(comments),
	})
}

// Create handles creating a new comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	comment := &models.Comment{
		PostID:  req.PostID,
		Content: req.Content,
		Author:  req.Author,
	}
	if err := cc.commentService.CreateComment(comment); err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	removed, err := cc.commentService.DeleteComment(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if !removed {
		sendError(w, http.StatusNotFound, "record not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
