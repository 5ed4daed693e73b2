//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/abhijeet3015/socialstream/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// UniqueUsername — уникальный пользователь на тест, чтобы прогоны не мешали друг другу.
func UniqueUsername() string { return "user-" + UniqSuffix() }

// MakeUserCreated — валидное событие регистрации для публикации в брокер.
func MakeUserCreated(username string) domain.UserCreated {
	return domain.NewUserCreated(username, username+"@example.com")
}

// MakePostCreated — валидное событие поста от username.
func MakePostCreated(username string) domain.PostCreated {
	user := domain.NewUserRef(username, username+"@example.com")
	return domain.NewPostCreated(user, "post-"+UniqSuffix(), "content-"+UniqSuffix())
}

// MakeActivity — готовая запись ленты для прямой вставки в репозиторий.
func MakeActivity(username string, opts ...func(*domain.Activity)) *domain.Activity {
	ev := MakePostCreated(username)
	raw, _ := domain.Encode(ev)

	a := &domain.Activity{
		Kind:       ev.Kind(),
		Username:   username,
		Payload:    raw,
		EventTime:  time.Now().UTC().Truncate(time.Microsecond),
		ReceivedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, fn := range opts {
		fn(a)
	}
	return a
}

// WithKind — переопределить вид записи.
func WithKind(kind domain.EventKind) func(*domain.Activity) {
	return func(a *domain.Activity) { a.Kind = kind }
}

// WithEventTime — переопределить момент события (для проверки сортировки).
func WithEventTime(at time.Time) func(*domain.Activity) {
	return func(a *domain.Activity) { a.EventTime = at }
}
