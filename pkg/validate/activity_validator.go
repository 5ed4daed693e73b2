package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/ports"
)

// Проверка, что ActivityValidator удовлетворяет порту.
var _ ports.ActivityValidator = (*ActivityValidator)(nil)

// ErrInvalidActivity — sentinel-ошибка валидации. Сообщения с этой ошибкой
// консьюмер считает «ядовитыми»: логирует, коммитит и пропускает навсегда.
var ErrInvalidActivity = errors.New("activity validation failed")

var knownKinds = map[domain.EventKind]struct{}{
	domain.KindUserCreated:    {},
	domain.KindProfileCreated: {},
	domain.KindPostCreated:    {},
	domain.KindCommentCreated: {},
}

type ActivityValidator struct{}

func NewActivityValidator() *ActivityValidator { return &ActivityValidator{} }

// Validate — проверяет корректность записи ленты.
// Возвращает ErrInvalidActivity (с обёрнутой причиной) при любой проблеме.
func (v *ActivityValidator) Validate(_ context.Context, a *domain.Activity) error {
	if a == nil {
		return fmt.Errorf("%w: запись не может быть nil", ErrInvalidActivity)
	}
	if _, ok := knownKinds[a.Kind]; !ok {
		return fmt.Errorf("%w: неизвестный kind %q", ErrInvalidActivity, a.Kind)
	}
	if a.Username == "" {
		return fmt.Errorf("%w: username обязателен", ErrInvalidActivity)
	}
	if len(a.Payload) == 0 {
		return fmt.Errorf("%w: payload пуст", ErrInvalidActivity)
	}
	if a.EventTime.IsZero() || a.EventTime.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: event_time некорректен", ErrInvalidActivity)
	}
	return nil
}
