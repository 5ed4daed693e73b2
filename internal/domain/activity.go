package domain

import "time"

// Activity — запись ленты на стороне консьюмера: одно принятое событие
// плюс служебные поля хранения. Идентичность (ID) существует только в БД,
// на провод она не попадает.
type Activity struct {
	ID         int64     `json:"id"`
	Kind       EventKind `json:"kind"`
	Username   string    `json:"username"`
	Payload    []byte    `json:"payload"`
	EventTime  time.Time `json:"event_time"`
	ReceivedAt time.Time `json:"received_at"`
}

// ActivityFromEvent — собирает запись ленты из декодированного события
// и исходных байт сообщения.
func ActivityFromEvent(e Event, raw []byte) *Activity {
	payload := make([]byte, len(raw))
	copy(payload, raw)

	return &Activity{
		Kind:       e.Kind(),
		Username:   e.Actor(),
		Payload:    payload,
		EventTime:  e.OccurredAt(),
		ReceivedAt: time.Now().UTC(),
	}
}
