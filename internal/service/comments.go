package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// CreateCommentInput — входные данные создания комментария.
// ParentID == nil — корневой комментарий.
type CreateCommentInput struct {
	PostID   int64
	AuthorID int64
	Content  string
	ParentID *int64
}

// CommentCreated — созданный комментарий и актуальное число корневых комментариев поста.
type CommentCreated struct {
	Comment      *models.Comment
	CommentCount int64
}

// CreateComment создаёт комментарий или ответ на корневой комментарий.
//
// Проверки по порядку:
//  1. пост активен -> иначе ErrPostNotFound;
//  2. комментарии к посту разрешены -> иначе ErrCommentsDisabled;
//  3. родитель (если задан) активен -> иначе ErrParentNotFound;
//  4. родитель относится к тому же посту -> иначе ErrParentMismatch;
//  5. родитель сам корневой -> иначе ErrNestingUnsupported.
//
// Вставка и пересчёт CommentCount выполняются в одной транзакции.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*CommentCreated, error) {
	const op = "service/comments/CreateComment"
	lg := s.logger(ctx, op, "post_id", input.PostID, "user_id", input.AuthorID)

	if input.PostID <= 0 || input.AuthorID <= 0 || (input.ParentID != nil && *input.ParentID <= 0) {
		lg.Warn("invalid argument: ids")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		lg.Warn("invalid argument: empty content")

		return nil, fmt.Errorf("%s: %w", op, ErrEmptyContent)
	}

	post, err := s.storage.PostByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		lg.Error("storage error on PostByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !post.CommentsEnabled {
		lg.Warn("comments disabled")

		return nil, fmt.Errorf("%s: %w", op, ErrCommentsDisabled)
	}

	if input.ParentID != nil {
		parent, err := s.storage.CommentByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				lg.Warn("parent comment not found", "parent_id", *input.ParentID)

				return nil, fmt.Errorf("%s: %w", op, ErrParentNotFound)
			}

			lg.Error("storage error on CommentByID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if parent.PostID != input.PostID {
			lg.Warn("parent comment belongs to another post", "parent_id", parent.ID, "parent_post_id", parent.PostID)

			return nil, fmt.Errorf("%s: %w", op, ErrParentMismatch)
		}

		if !parent.IsTopLevel() {
			lg.Warn("reply to a reply", "parent_id", parent.ID)

			return nil, fmt.Errorf("%s: %w", op, ErrNestingUnsupported)
		}
	}

	comment, total, err := s.storage.CreateComment(ctx, &models.Comment{
		PostID:   input.PostID,
		UserID:   input.AuthorID,
		Content:  content,
		ParentID: input.ParentID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("referenced row disappeared", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		lg.Error("storage error on CreateComment", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &CommentCreated{Comment: comment, CommentCount: total}, nil
}

// CommentByID возвращает активный комментарий.
// Ошибки: ErrInvalidArgument, ErrCommentNotFound, ErrInternal.
func (s *Service) CommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	const op = "service/comments/CommentByID"
	lg := s.logger(ctx, op, "comment_id", id)

	if id <= 0 {
		lg.Warn("invalid argument: comment_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comment, err := s.storage.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comment not found")

			return nil, fmt.Errorf("%s: %w", op, ErrCommentNotFound)
		}

		lg.Error("storage error on CommentByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return comment, nil
}

// UpdateComment меняет текст комментария. Только автор, только активный комментарий.
// Ошибки: ErrEmptyContent, ErrNotFoundOrUnauthorized, ErrInternal.
func (s *Service) UpdateComment(ctx context.Context, id, requesterID int64, content string) (*models.Comment, error) {
	const op = "service/comments/UpdateComment"
	lg := s.logger(ctx, op, "comment_id", id, "user_id", requesterID)

	if id <= 0 || requesterID <= 0 {
		lg.Warn("invalid argument: ids")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		lg.Warn("invalid argument: empty content")

		return nil, fmt.Errorf("%s: %w", op, ErrEmptyContent)
	}

	comment, err := s.storage.UpdateComment(ctx, id, requesterID, content)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comment not found or not owned")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFoundOrUnauthorized)
		}

		lg.Error("storage error on UpdateComment", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return comment, nil
}

// DeleteComment мягко удаляет комментарий автора.
// Повторное удаление возвращает ErrNotFoundOrUnauthorized.
func (s *Service) DeleteComment(ctx context.Context, id, requesterID int64) error {
	const op = "service/comments/DeleteComment"
	lg := s.logger(ctx, op, "comment_id", id, "user_id", requesterID)

	if id <= 0 || requesterID <= 0 {
		lg.Warn("invalid argument: ids")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ok, err := s.storage.SoftDeleteComment(ctx, id, requesterID)
	if err != nil {
		lg.Error("storage error on SoftDeleteComment", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !ok {
		lg.Warn("comment not found or not owned")

		return fmt.Errorf("%s: %w", op, ErrNotFoundOrUnauthorized)
	}

	return nil
}

// ListTopLevelComments возвращает активные корневые комментарии поста, старые первыми,
// каждый с числом активных ответов.
// Пост должен быть активен -> иначе ErrPostNotFound.
func (s *Service) ListTopLevelComments(ctx context.Context, postID int64, p models.PageParams) (*models.Page[models.Comment], error) {
	const op = "service/comments/ListTopLevelComments"
	lg := s.logger(ctx, op, "post_id", postID)

	if postID <= 0 {
		lg.Warn("invalid argument: post_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		lg.Error("storage error on PostByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.Comment, error) { return s.storage.TopLevelComments(ctx, postID, p) },
		func(ctx context.Context) (int64, error) { return s.storage.CountTopLevelComments(ctx, postID) },
	)
	if err != nil {
		lg.Error("storage error on ListTopLevelComments", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// ListReplies возвращает активные прямые ответы на комментарий, старые первыми.
// Родительский комментарий должен быть активен -> иначе ErrCommentNotFound.
func (s *Service) ListReplies(ctx context.Context, parentID int64, p models.PageParams) (*models.Page[models.Comment], error) {
	const op = "service/comments/ListReplies"
	lg := s.logger(ctx, op, "parent_id", parentID)

	if parentID <= 0 {
		lg.Warn("invalid argument: parent_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.CommentByID(ctx, parentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("parent comment not found")

			return nil, fmt.Errorf("%s: %w", op, ErrCommentNotFound)
		}

		lg.Error("storage error on CommentByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.Comment, error) { return s.storage.Replies(ctx, parentID, p) },
		func(ctx context.Context) (int64, error) { return s.storage.CountReplies(ctx, parentID) },
	)
	if err != nil {
		lg.Error("storage error on ListReplies", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// CommentCount возвращает число активных корневых комментариев поста.
func (s *Service) CommentCount(ctx context.Context, postID int64) (int64, error) {
	const op = "service/comments/CommentCount"
	lg := s.logger(ctx, op, "post_id", postID)

	if postID <= 0 {
		lg.Warn("invalid argument: post_id")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	n, err := s.storage.CountTopLevelComments(ctx, postID)
	if err != nil {
		lg.Error("storage error on CountTopLevelComments", "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return n, nil
}
