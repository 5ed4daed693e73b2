package ports

import "context"

// PayloadFetcher — внешний источник сырых полезных нагрузок (например, HTTP API).
// Ошибка — обычное возвращаемое значение: вызывающий цикл сам решает,
// пропустить такт или остановиться.
type PayloadFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}
