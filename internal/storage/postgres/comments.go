package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-feed/internal/models"
)

// commentColumns — колонки комментария с данными автора; алиасы c (comments) и u (users).
const commentColumns = `
c.id, c.post_id, c.user_id, c.content, c.parent_comment_id, c.created_at, c.updated_at,
u.username, u.display_name
`

// replyCount — число активных прямых ответов на комментарий c.
const replyCount = `
(SELECT count(*) FROM comments r WHERE r.parent_comment_id = c.id AND r.is_deleted = FALSE) AS reply_count
`

const countTopLevel = `
SELECT count(*) FROM comments
WHERE post_id = $1 AND parent_comment_id IS NULL AND is_deleted = FALSE`

// CreateComment вставляет комментарий и в той же транзакции считает активные
// корневые комментарии поста.
// Ошибки: storage.ErrNotFound при нарушении внешнего ключа (пост/автор/родитель).
func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, int64, error) {
	const op = "storage/postgres/comments/CreateComment"

	q := `
	WITH c AS (
		INSERT INTO comments (post_id, user_id, content, parent_comment_id)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	)
	SELECT ` + commentColumns + `
	FROM c JOIN users u ON u.id = c.user_id`

	var (
		created *models.Comment
		total   int64
	)

	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var err error

		created, err = queryOne[models.Comment](ctx, tx, q, comment.PostID, comment.UserID, comment.Content, comment.ParentID)
		if err != nil {
			return err
		}

		total, err = count(ctx, tx, countTopLevel, comment.PostID)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return created, total, nil
}

// CommentByID возвращает активный комментарий.
// Ошибки: storage.ErrNotFound.
func (s *Storage) CommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	const op = "storage/postgres/comments/CommentByID"

	q := `SELECT ` + commentColumns + `
	FROM comments c JOIN users u ON u.id = c.user_id
	WHERE c.id = $1 AND c.is_deleted = FALSE`

	result, err := queryOne[models.Comment](ctx, s.db, q, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// UpdateComment меняет текст активного комментария автора.
// Ошибки: storage.ErrNotFound.
func (s *Storage) UpdateComment(ctx context.Context, id, authorID int64, content string) (*models.Comment, error) {
	const op = "storage/postgres/comments/UpdateComment"

	q := `
	WITH c AS (
		UPDATE comments SET content = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
		RETURNING *
	)
	SELECT ` + commentColumns + `
	FROM c JOIN users u ON u.id = c.user_id`

	result, err := queryOne[models.Comment](ctx, s.db, q, id, authorID, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// SoftDeleteComment помечает комментарий удалённым.
// false — нет активного комментария с таким id у authorID.
func (s *Storage) SoftDeleteComment(ctx context.Context, id, authorID int64) (bool, error) {
	const op = "storage/postgres/comments/SoftDeleteComment"

	tag, err := s.db.Exec(ctx, `
	UPDATE comments SET is_deleted = TRUE, updated_at = now()
	WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE`, id, authorID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// TopLevelComments возвращает активные корневые комментарии поста, старые первыми,
// с числом активных ответов.
func (s *Storage) TopLevelComments(ctx context.Context, postID int64, page models.PageParams) ([]models.Comment, error) {
	const op = "storage/postgres/comments/TopLevelComments"

	q := `SELECT ` + commentColumns + `, ` + replyCount + `
	FROM comments c JOIN users u ON u.id = c.user_id
	WHERE c.post_id = $1 AND c.parent_comment_id IS NULL AND c.is_deleted = FALSE
	ORDER BY c.created_at ASC, c.id ASC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.Comment](ctx, s.db, q, postID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountTopLevelComments возвращает число активных корневых комментариев поста.
func (s *Storage) CountTopLevelComments(ctx context.Context, postID int64) (int64, error) {
	const op = "storage/postgres/comments/CountTopLevelComments"

	n, err := count(ctx, s.db, countTopLevel, postID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// Replies возвращает активные прямые ответы на комментарий, старые первыми.
func (s *Storage) Replies(ctx context.Context, parentID int64, page models.PageParams) ([]models.Comment, error) {
	const op = "storage/postgres/comments/Replies"

	q := `SELECT ` + commentColumns + `, ` + replyCount + `
	FROM comments c JOIN users u ON u.id = c.user_id
	WHERE c.parent_comment_id = $1 AND c.is_deleted = FALSE
	ORDER BY c.created_at ASC, c.id ASC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.Comment](ctx, s.db, q, parentID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountReplies возвращает число активных прямых ответов.
func (s *Storage) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	const op = "storage/postgres/comments/CountReplies"

	n, err := count(ctx, s.db, `
	SELECT count(*) FROM comments
	WHERE parent_comment_id = $1 AND is_deleted = FALSE`, parentID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
