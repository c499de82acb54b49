package handlers

import (
	"time"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/samber/lo"
)

// Запросы.

type createPostRequest struct {
	Content         string  `json:"content" validate:"required,notblank,max=5000"`
	MediaURL        *string `json:"media_url" validate:"omitempty,max=2048"`
	CommentsEnabled *bool   `json:"comments_enabled"`
}

type updatePostRequest struct {
	Content         *string `json:"content" validate:"omitempty,max=5000"`
	MediaURL        *string `json:"media_url" validate:"omitempty,max=2048"`
	CommentsEnabled *bool   `json:"comments_enabled"`
}

type createCommentRequest struct {
	PostID          int64  `json:"post_id" validate:"required,gt=0"`
	Content         string `json:"content" validate:"required,notblank,max=1000"`
	ParentCommentID *int64 `json:"parent_comment_id" validate:"omitempty,gt=0"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=1000"`
}

type likeRequest struct {
	PostID int64 `json:"post_id" validate:"required,gt=0"`
}

type followRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,max=255"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,max=2048"`
}

type uploadURLRequest struct {
	Kind          string `json:"kind" validate:"required,oneof=avatars posts"`
	ContentType   string `json:"content_type" validate:"required,max=100"`
	ContentLength int64  `json:"content_length" validate:"required,gt=0"`
}

type confirmAvatarRequest struct {
	Key string `json:"key" validate:"required,max=512"`
}

// Ответы.

type pagination struct {
	Page    int32 `json:"page"`
	Limit   int32 `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

func paginationFrom[T any](p *models.Page[T], page int32) pagination {
	return pagination{
		Page:    page,
		Limit:   p.Limit,
		Total:   p.Total,
		HasMore: p.HasMore,
	}
}

type postResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Content         string    `json:"content"`
	MediaURL        *string   `json:"media_url,omitempty"`
	CommentsEnabled bool      `json:"comments_enabled"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func postFromModel(p models.Post) postResponse {
	return postResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Content:         p.Content,
		MediaURL:        p.MediaURL,
		CommentsEnabled: p.CommentsEnabled,
		Username:        p.AuthorUsername,
		DisplayName:     p.AuthorDisplayName,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type postsPageResponse struct {
	Posts      []postResponse `json:"posts"`
	Pagination pagination     `json:"pagination"`
}

func postsPage(p *models.Page[models.Post], page int32) postsPageResponse {
	return postsPageResponse{
		Posts:      lo.Map(p.Items, func(item models.Post, _ int) postResponse { return postFromModel(item) }),
		Pagination: paginationFrom(p, page),
	}
}

type commentResponse struct {
	ID              int64     `json:"id"`
	PostID          int64     `json:"post_id"`
	UserID          int64     `json:"user_id"`
	Content         string    `json:"content"`
	ParentCommentID *int64    `json:"parent_comment_id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	ReplyCount      int64     `json:"reply_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func commentFromModel(c models.Comment) commentResponse {
	return commentResponse{
		ID:              c.ID,
		PostID:          c.PostID,
		UserID:          c.UserID,
		Content:         c.Content,
		ParentCommentID: c.ParentID,
		Username:        c.AuthorUsername,
		DisplayName:     c.AuthorDisplayName,
		ReplyCount:      c.ReplyCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func commentsFromModels(items []models.Comment) []commentResponse {
	return lo.Map(items, func(item models.Comment, _ int) commentResponse { return commentFromModel(item) })
}

type likeResponse struct {
	UserID      int64     `json:"user_id"`
	PostID      int64     `json:"post_id"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	LikedAt     time.Time `json:"liked_at"`
}

func likeFromModel(l models.Like) likeResponse {
	return likeResponse{
		UserID:      l.UserID,
		PostID:      l.PostID,
		Username:    l.Username,
		DisplayName: l.DisplayName,
		LikedAt:     l.CreatedAt,
	}
}

type likedPostResponse struct {
	PostID        int64     `json:"post_id"`
	Content       string    `json:"content"`
	MediaURL      *string   `json:"media_url,omitempty"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	PostCreatedAt time.Time `json:"post_created_at"`
	LikedAt       time.Time `json:"liked_at"`
}

func likedPostFromModel(p models.LikedPost) likedPostResponse {
	return likedPostResponse{
		PostID:        p.PostID,
		Content:       p.Content,
		MediaURL:      p.MediaURL,
		Username:      p.AuthorUsername,
		DisplayName:   p.AuthorDisplayName,
		PostCreatedAt: p.PostCreatedAt,
		LikedAt:       p.LikedAt,
	}
}

type followResponse struct {
	FollowerID int64     `json:"follower_id"`
	FollowedID int64     `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type followEdgeResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	FollowedSince time.Time `json:"followed_since"`
}

type followEdgesPageResponse struct {
	Users      []followEdgeResponse `json:"users"`
	Pagination pagination           `json:"pagination"`
}

func followEdgesPage(p *models.Page[models.FollowEdge], page int32) followEdgesPageResponse {
	return followEdgesPageResponse{
		Users: lo.Map(p.Items, func(e models.FollowEdge, _ int) followEdgeResponse {
			return followEdgeResponse{
				ID:            e.UserID,
				Username:      e.Username,
				DisplayName:   e.DisplayName,
				FollowedSince: e.FollowedSince,
			}
		}),
		Pagination: paginationFrom(p, page),
	}
}

type followCountsResponse struct {
	FollowingCount int64 `json:"following_count"`
	FollowersCount int64 `json:"followers_count"`
}

// userResponse — публичное представление пользователя. Email отдаётся только владельцу.
type userResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func userFromModel(u models.User, self bool) userResponse {
	out := userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
	if self {
		out.Email = u.Email
	}
	return out
}

type profileResponse struct {
	User           userResponse `json:"user"`
	FollowingCount int64        `json:"following_count"`
	FollowersCount int64        `json:"followers_count"`
	PostsCount     int64        `json:"posts_count"`
	IsFollowing    *bool        `json:"is_following,omitempty"`
}

func profileFromModel(p *models.Profile, self bool) profileResponse {
	return profileResponse{
		User:           userFromModel(p.User, self),
		FollowingCount: p.Counts.Following,
		FollowersCount: p.Counts.Followers,
		PostsCount:     p.Counts.Posts,
		IsFollowing:    p.IsFollowing,
	}
}

type uploadURLResponse struct {
	UploadURL       string            `json:"upload_url"`
	Key             string            `json:"key"`
	ExpiresIn       int64             `json:"expires_in"`
	RequiredHeaders map[string]string `json:"required_headers"`
}
