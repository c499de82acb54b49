package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/internal/service"
)

type commentEnvelope struct {
	Comment commentResponse `json:"comment"`
}

type commentCreatedResponse struct {
	Comment      commentResponse `json:"comment"`
	CommentCount int64           `json:"comment_count"`
}

type commentsPageResponse struct {
	Comments   []commentResponse `json:"comments"`
	Pagination pagination        `json:"pagination"`
}

type repliesPageResponse struct {
	Replies    []commentResponse `json:"replies"`
	Pagination pagination        `json:"pagination"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in createCommentRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.CreateComment(r.Context(), service.CreateCommentInput{
		PostID:   in.PostID,
		AuthorID: callerID(r),
		Content:  in.Content,
		ParentID: in.ParentCommentID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentCreatedResponse{
		Comment:      commentFromModel(*res.Comment),
		CommentCount: res.CommentCount,
	})
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	c, err := h.svc.CommentByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentEnvelope{Comment: commentFromModel(*c)})
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateCommentRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), id, callerID(r), in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentEnvelope{Comment: commentFromModel(*c)})
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id, callerID(r)); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, page, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListTopLevelComments(r.Context(), postID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsPageResponse{
		Comments:   commentsFromModels(res.Items),
		Pagination: paginationFrom(res, page),
	})
}

func (h *Handlers) ListReplies(w http.ResponseWriter, r *http.Request) {
	parentID, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, page, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListReplies(r.Context(), parentID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, repliesPageResponse{
		Replies:    commentsFromModels(res.Items),
		Pagination: paginationFrom(res, page),
	})
}
