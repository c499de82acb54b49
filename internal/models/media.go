package models

// MediaKind — назначение загружаемого файла; задаёт префикс ключа в бакете.
type MediaKind string

const (
	MediaAvatar MediaKind = "avatars"
	MediaPost   MediaKind = "posts"
)

// Valid сообщает, поддерживается ли kind.
func (k MediaKind) Valid() bool {
	return k == MediaAvatar || k == MediaPost
}
