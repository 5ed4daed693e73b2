package ports

import (
	"context"

	"github.com/abhijeet3015/socialstream/internal/domain"
)

type ActivityRepository interface {
	// Save — сохраняет запись и проставляет a.ID.
	Save(ctx context.Context, a *domain.Activity) error
	ListByUser(ctx context.Context, username string, limit, offset int) ([]*domain.Activity, error)
	LastN(ctx context.Context, n int) ([]*domain.Activity, error)
}
