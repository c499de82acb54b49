package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type likeCreatedResponse struct {
	Like      likeResponse `json:"like"`
	LikeCount int64        `json:"like_count"`
}

type likeCountResponse struct {
	LikeCount int64 `json:"like_count"`
}

type likeStatusResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type likesPageResponse struct {
	Likes      []likeResponse `json:"likes"`
	Pagination pagination     `json:"pagination"`
}

type likedPostsPageResponse struct {
	Posts      []likedPostResponse `json:"posts"`
	Pagination pagination          `json:"pagination"`
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	var in likeRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.LikePost(r.Context(), callerID(r), in.PostID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, likeCreatedResponse{
		Like:      likeFromModel(*res.Like),
		LikeCount: res.LikeCount,
	})
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	n, err := h.svc.UnlikePost(r.Context(), callerID(r), postID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, likeCountResponse{LikeCount: n})
}

func (h *Handlers) ListPostLikes(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.svc.ListPostLikers(r.Context(), postID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, likesPageResponse{
		Likes:      lo.Map(res.Items, func(l models.Like, _ int) likeResponse { return likeFromModel(l) }),
		Pagination: paginationFrom(res, page),
	})
}

func (h *Handlers) ListUserLikes(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.svc.ListUserLikedPosts(r.Context(), userID, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, likedPostsPageResponse{
		Posts:      lo.Map(res.Items, func(lp models.LikedPost, _ int) likedPostResponse { return likedPostFromModel(lp) }),
		Pagination: paginationFrom(res, page),
	})
}

// LikeStatus отвечает, лайкнул ли текущий пользователь пост, вместе с числом лайков.
func (h *Handlers) LikeStatus(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var out likeStatusResponse

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		liked, err := h.svc.HasLiked(ctx, callerID(r), postID)
		out.Liked = liked
		return err
	})
	g.Go(func() error {
		n, err := h.svc.LikeCount(ctx, postID)
		out.LikeCount = n
		return err
	})

	if err := g.Wait(); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}
