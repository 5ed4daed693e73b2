package ports

import (
	"context"

	"github.com/abhijeet3015/socialstream/internal/domain"
)

type ActivityValidator interface {
	Validate(ctx context.Context, a *domain.Activity) error
}
