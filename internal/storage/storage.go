// storage содержит контракты слоя хранилищ social-сервиса.
//
// storage.go - ошибки уровня хранилища и объединённый контракт Storage.
// posts.go, comments.go, likes.go, follows.go, users.go - контракты по сущностям.
// media.go - контракт presigned-загрузки медиа в S3/MinIO.
package storage

import "errors"

var (
	// ErrNotFound — запись не найдена (или нарушен внешний ключ на несуществующую запись).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — запись с тем же ключом/уникальным полем уже существует.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConstraint — нарушено CHECK-ограничение схемы.
	ErrConstraint = errors.New("constraint violation")
)

// Storage — верхнеуровневый контракт реляционного хранилища.
type Storage interface {
	Posts
	Comments
	Likes
	Follows
	Users
	Close()
}
