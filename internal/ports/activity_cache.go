package ports

import (
	"context"

	"github.com/abhijeet3015/socialstream/internal/domain"
)

// ActivityCache — кэш свежей активности по пользователю.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// возврат копий записей (лента снаружи не должна влиять на кэш).
type ActivityCache interface {
	// Get — свежая лента пользователя; (feed, true) при попадании.
	Get(ctx context.Context, username string) ([]*domain.Activity, bool)

	// Set — заменить ленту пользователя целиком.
	Set(ctx context.Context, username string, feed []*domain.Activity) error

	// Add — добавить одну запись в начало ленты пользователя.
	Add(ctx context.Context, a *domain.Activity) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, items []*domain.Activity) error
}
