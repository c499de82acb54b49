package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/internal/service"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

type postEnvelope struct {
	Post postResponse `json:"post"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in createPostRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), service.CreatePostInput{
		OwnerID:         callerID(r),
		Content:         in.Content,
		MediaRef:        in.MediaURL,
		CommentsEnabled: in.CommentsEnabled,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, postEnvelope{Post: postFromModel(*post)})
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.PostByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postEnvelope{Post: postFromModel(*post)})
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updatePostRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.UpdatePost(r.Context(), id, callerID(r), storage.PostUpdate{
		Content:         in.Content,
		MediaURL:        in.MediaURL,
		CommentsEnabled: in.CommentsEnabled,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postEnvelope{Post: postFromModel(*post)})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeletePost(r.Context(), id, callerID(r)); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, page, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListPostsByUser(r.Context(), userID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postsPage(res, page))
}

func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	p, page, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListFeed(r.Context(), callerID(r), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postsPage(res, page))
}
