package handler

import (
	"net/http"

	"github.com/hszk-dev/mediahub/internal/usecase"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /v1/comments/{videoID}
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	q := r.URL.Query()
	comments, err := h.svc.ListComments(r.Context(), usecase.ListCommentsInput{
		VideoID:       videoID,
		Page:          q.Get("page"),
		Limit:         q.Get("limit"),
		SortField:     q.Get("sortBy"),
		SortDirection: q.Get("sortType"),
	})
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, mapSlice(comments, toCommentResponse), "Comments fetched successfully")
}

// Add handles POST /v1/comments/{videoID}
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	var req ContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Fail(w, r, err)
		return
	}

	comment, err := h.svc.AddComment(r.Context(), userID, videoID, req.Content)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusCreated, toCommentResponse(comment), "Comment added successfully")
}

// Update handles PATCH /v1/comments/c/{commentID}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	commentID, err := pathID(r, "commentID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	var req ContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Fail(w, r, err)
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), userID, commentID, req.Content)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toCommentResponse(comment), "Comment updated successfully")
}

// Delete handles DELETE /v1/comments/c/{commentID}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	commentID, err := pathID(r, "commentID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	comment, err := h.svc.DeleteComment(r.Context(), userID, commentID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toCommentResponse(comment), "Comment deleted successfully")
}
