package postgres

import (
	"fmt"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/jackc/pgx/v5"
)

func scanActivities(rows pgx.Rows) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for rows.Next() {
		var (
			a    domain.Activity
			kind string
		)
		if err := rows.Scan(&a.ID, &kind, &a.Username, &a.Payload, &a.EventTime, &a.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Kind = domain.EventKind(kind)
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
