package storage

import (
	"context"

	"github.com/pribylovaa/go-social-feed/internal/models"
)

// Comments — контракт репозитория комментариев.
type Comments interface {
	// CreateComment вставляет комментарий и в той же транзакции считает активные
	// корневые комментарии поста. Ошибки: ErrNotFound при нарушении внешнего ключа.
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, int64, error)
	// CommentByID возвращает активный комментарий. Ошибки: ErrNotFound.
	CommentByID(ctx context.Context, id int64) (*models.Comment, error)
	// UpdateComment меняет текст комментария автора. Ошибки: ErrNotFound.
	UpdateComment(ctx context.Context, id, authorID int64, content string) (*models.Comment, error)
	// SoftDeleteComment помечает комментарий удалённым; false — нет активного комментария authorID.
	SoftDeleteComment(ctx context.Context, id, authorID int64) (bool, error)
	// TopLevelComments возвращает корневые комментарии поста, старые первыми, с ReplyCount.
	TopLevelComments(ctx context.Context, postID int64, page models.PageParams) ([]models.Comment, error)
	// CountTopLevelComments возвращает число активных корневых комментариев поста.
	CountTopLevelComments(ctx context.Context, postID int64) (int64, error)
	// Replies возвращает прямые ответы на комментарий, старые первыми.
	Replies(ctx context.Context, parentID int64, page models.PageParams) ([]models.Comment, error)
	// CountReplies возвращает число активных прямых ответов.
	CountReplies(ctx context.Context, parentID int64) (int64, error)
}
