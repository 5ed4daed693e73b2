// Пакет domain — неизменяемые доменные события социальной сети.
// Событие конструируется один раз; все поля закрыты, доступ — через геттеры.
// "Мутация" (например, лайк поста) возвращает новое значение события.
package domain

import "time"

// EventKind — дискриминатор варианта события (уходит на провод).
type EventKind string

const (
	KindUserCreated    EventKind = "user_created"
	KindProfileCreated EventKind = "profile_created"
	KindPostCreated    EventKind = "post_created"
	KindCommentCreated EventKind = "comment_created"
)

// Event — общий контракт вариантов.
type Event interface {
	Kind() EventKind
	// Actor — username автора действия; используется как ключ партиционирования,
	// чтобы события одного пользователя сохраняли порядок.
	Actor() string
	OccurredAt() time.Time
}

// UserRef — публично-безопасная ссылка на пользователя.
// На провод уходят только username и email — никогда полная сущность.
type UserRef struct {
	username string
	email    string
}

func NewUserRef(username, email string) UserRef {
	return UserRef{username: username, email: email}
}

func (r UserRef) Username() string { return r.username }
func (r UserRef) Email() string    { return r.email }

// ---------------------------------------------------------------------------
// UserCreated
// ---------------------------------------------------------------------------

type UserCreated struct {
	username  string
	email     string
	createdAt time.Time
}

// NewUserCreated — конструктор; момент создания фиксируется здесь и далее не меняется.
func NewUserCreated(username, email string) UserCreated {
	return newUserCreatedAt(username, email, time.Now().UTC())
}

func newUserCreatedAt(username, email string, at time.Time) UserCreated {
	return UserCreated{username: username, email: email, createdAt: at}
}

func (e UserCreated) Kind() EventKind       { return KindUserCreated }
func (e UserCreated) Actor() string         { return e.username }
func (e UserCreated) OccurredAt() time.Time { return e.createdAt }
func (e UserCreated) Username() string      { return e.username }
func (e UserCreated) Email() string         { return e.email }

// ---------------------------------------------------------------------------
// ProfileCreated
// ---------------------------------------------------------------------------

type ProfileCreated struct {
	user      UserRef
	firstName string
	lastName  string
	bio       string
	contact   int64
	createdAt time.Time
}

func NewProfileCreated(user UserRef, firstName, lastName, bio string, contact int64) ProfileCreated {
	return newProfileCreatedAt(user, firstName, lastName, bio, contact, time.Now().UTC())
}

func newProfileCreatedAt(user UserRef, firstName, lastName, bio string, contact int64, at time.Time) ProfileCreated {
	return ProfileCreated{
		user:      user,
		firstName: firstName,
		lastName:  lastName,
		bio:       bio,
		contact:   contact,
		createdAt: at,
	}
}

func (e ProfileCreated) Kind() EventKind       { return KindProfileCreated }
func (e ProfileCreated) Actor() string         { return e.user.username }
func (e ProfileCreated) OccurredAt() time.Time { return e.createdAt }
func (e ProfileCreated) User() UserRef         { return e.user }
func (e ProfileCreated) FirstName() string     { return e.firstName }
func (e ProfileCreated) LastName() string      { return e.lastName }
func (e ProfileCreated) Bio() string           { return e.bio }
func (e ProfileCreated) Contact() int64        { return e.contact }

// ---------------------------------------------------------------------------
// PostCreated
// ---------------------------------------------------------------------------

type PostCreated struct {
	user      UserRef
	title     string
	content   string
	likeCount int
	createdAt time.Time
}

// NewPostCreated — новый пост; like_count всегда стартует с нуля.
func NewPostCreated(user UserRef, title, content string) PostCreated {
	return newPostCreatedAt(user, title, content, 0, time.Now().UTC())
}

func newPostCreatedAt(user UserRef, title, content string, likeCount int, at time.Time) PostCreated {
	return PostCreated{
		user:      user,
		title:     title,
		content:   content,
		likeCount: likeCount,
		createdAt: at,
	}
}

func (e PostCreated) Kind() EventKind       { return KindPostCreated }
func (e PostCreated) Actor() string         { return e.user.username }
func (e PostCreated) OccurredAt() time.Time { return e.createdAt }
func (e PostCreated) User() UserRef         { return e.user }
func (e PostCreated) Title() string         { return e.title }
func (e PostCreated) Content() string       { return e.content }
func (e PostCreated) LikeCount() int        { return e.likeCount }

// WithLike — возвращает копию события с увеличенным счётчиком лайков.
// Исходное значение не меняется: опубликованное сообщение неприкосновенно,
// лайки добавляются только до сериализации.
func (e PostCreated) WithLike() PostCreated {
	e.likeCount++
	return e
}

// ---------------------------------------------------------------------------
// CommentCreated
// ---------------------------------------------------------------------------

type CommentCreated struct {
	user      UserRef
	content   string
	createdAt time.Time
}

func NewCommentCreated(user UserRef, content string) CommentCreated {
	return newCommentCreatedAt(user, content, time.Now().UTC())
}

func newCommentCreatedAt(user UserRef, content string, at time.Time) CommentCreated {
	return CommentCreated{user: user, content: content, createdAt: at}
}

func (e CommentCreated) Kind() EventKind       { return KindCommentCreated }
func (e CommentCreated) Actor() string         { return e.user.username }
func (e CommentCreated) OccurredAt() time.Time { return e.createdAt }
func (e CommentCreated) User() UserRef         { return e.user }
func (e CommentCreated) Content() string       { return e.content }
