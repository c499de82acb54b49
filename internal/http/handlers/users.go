package handlers

import (
	"context"
	"net/http"

	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/service"
)

type followCreatedResponse struct {
	Follow         followResponse `json:"follow"`
	FollowersCount int64          `json:"followers_count"`
}

type followersCountResponse struct {
	FollowersCount int64 `json:"followers_count"`
}

type profileEnvelope struct {
	Profile profileResponse `json:"profile"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	var in followRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.FollowUser(r.Context(), callerID(r), in.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, followCreatedResponse{
		Follow: followResponse{
			FollowerID: res.Follow.FollowerID,
			FollowedID: res.Follow.FollowedID,
			CreatedAt:  res.Follow.CreatedAt,
		},
		FollowersCount: res.FollowersCount,
	})
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	n, err := h.svc.UnfollowUser(r.Context(), callerID(r), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, followersCountResponse{FollowersCount: n})
}

func (h *Handlers) MyFollowing(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, callerID(r), h.svc.ListFollowing)
}

func (h *Handlers) MyFollowers(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, callerID(r), h.svc.ListFollowers)
}

func (h *Handlers) UserFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	h.listEdges(w, r, userID, h.svc.ListFollowing)
}

func (h *Handlers) UserFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	h.listEdges(w, r, userID, h.svc.ListFollowers)
}

type listEdgesFunc func(ctx context.Context, userID int64, p models.PageParams) (*models.Page[models.FollowEdge], error)

func (h *Handlers) listEdges(w http.ResponseWriter, r *http.Request, userID int64, list listEdgesFunc) {
	p, page, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := list(r.Context(), userID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, followEdgesPage(res, page))
}

// MyStats — счётчики подписок текущего пользователя.
func (h *Handlers) MyStats(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.FollowCounts(r.Context(), callerID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, followCountsResponse{
		FollowingCount: c.Following,
		FollowersCount: c.Followers,
	})
}

// GetProfile доступен анонимно; is_following заполняется только для аутентифицированного запроса.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	caller := optionalCallerID(r)

	p, err := h.svc.Profile(r.Context(), userID, caller)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	self := caller != nil && *caller == userID
	writeJSON(w, http.StatusOK, profileEnvelope{Profile: profileFromModel(p, self)})
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in updateProfileRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), callerID(r), service.ProfileUpdate{
		DisplayName: in.DisplayName,
		Email:       in.Email,
		Bio:         in.Bio,
		AvatarURL:   in.AvatarURL,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: userFromModel(*u, true)})
}
