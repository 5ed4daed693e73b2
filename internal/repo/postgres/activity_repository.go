package postgres

import (
	"context"
	"fmt"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository — хранение принятых событий в таблице activities.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Save — вставка записи; id проставляется из RETURNING.
func (r *ActivityRepository) Save(ctx context.Context, a *domain.Activity) error {
	const q = `
		INSERT INTO activities (kind, username, payload, event_time, received_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, q,
		string(a.Kind), a.Username, a.Payload, a.EventTime, a.ReceivedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByUser — лента пользователя, свежие записи первыми.
func (r *ActivityRepository) ListByUser(ctx context.Context, username string, limit, offset int) ([]*domain.Activity, error) {
	const q = `
		SELECT id, kind, username, payload, event_time, received_at
		FROM activities
		WHERE username = $1
		ORDER BY event_time DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, q, username, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by user: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// LastN — последние n записей по всем пользователям (прогрев кэша, /activity/recent).
func (r *ActivityRepository) LastN(ctx context.Context, n int) ([]*domain.Activity, error) {
	const q = `
		SELECT id, kind, username, payload, event_time, received_at
		FROM activities
		ORDER BY event_time DESC, id DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("last n: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}
