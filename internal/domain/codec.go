package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Канонический формат сообщения: конверт с дискриминатором и полезной нагрузкой.
// Encode/Decode образуют точный round-trip: Decode(Encode(e)) == e.

var ErrUnknownKind = errors.New("unknown event kind")

type envelope struct {
	Kind    EventKind       `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Wire-представления вариантов. В user уходят только публичные поля (UserRef).
type wireUserRef struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type wireUserCreated struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type wireProfileCreated struct {
	User      wireUserRef `json:"user"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio"`
	Contact   int64       `json:"contact"`
	CreatedAt time.Time   `json:"created_at"`
}

type wirePostCreated struct {
	User      wireUserRef `json:"user"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	LikeCount int         `json:"like_count"`
	CreatedAt time.Time   `json:"created_at"`
}

type wireCommentCreated struct {
	User      wireUserRef `json:"user"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

func refToWire(r UserRef) wireUserRef {
	return wireUserRef{Username: r.username, Email: r.email}
}

func refFromWire(w wireUserRef) UserRef {
	return UserRef{username: w.Username, email: w.Email}
}

// Encode — сериализует событие в канонический JSON-конверт.
func Encode(e Event) ([]byte, error) {
	var payload any

	switch ev := e.(type) {
	case UserCreated:
		payload = wireUserCreated{
			Username:  ev.username,
			Email:     ev.email,
			CreatedAt: ev.createdAt,
		}
	case ProfileCreated:
		payload = wireProfileCreated{
			User:      refToWire(ev.user),
			FirstName: ev.firstName,
			LastName:  ev.lastName,
			Bio:       ev.bio,
			Contact:   ev.contact,
			CreatedAt: ev.createdAt,
		}
	case PostCreated:
		payload = wirePostCreated{
			User:      refToWire(ev.user),
			Title:     ev.title,
			Content:   ev.content,
			LikeCount: ev.likeCount,
			CreatedAt: ev.createdAt,
		}
	case CommentCreated:
		payload = wireCommentCreated{
			User:      refToWire(ev.user),
			Content:   ev.content,
			CreatedAt: ev.createdAt,
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, e)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(envelope{Kind: e.Kind(), Payload: raw})
}

// Decode — строгий разбор конверта: неизвестные поля и хвостовые данные — ошибка.
func Decode(raw []byte) (Event, error) {
	var env envelope
	if err := strictUnmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Kind {
	case KindUserCreated:
		var w wireUserCreated
		if err := strictUnmarshal(env.Payload, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Kind, err)
		}
		return newUserCreatedAt(w.Username, w.Email, w.CreatedAt), nil

	case KindProfileCreated:
		var w wireProfileCreated
		if err := strictUnmarshal(env.Payload, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Kind, err)
		}
		return newProfileCreatedAt(refFromWire(w.User), w.FirstName, w.LastName, w.Bio, w.Contact, w.CreatedAt), nil

	case KindPostCreated:
		var w wirePostCreated
		if err := strictUnmarshal(env.Payload, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Kind, err)
		}
		return newPostCreatedAt(refFromWire(w.User), w.Title, w.Content, w.LikeCount, w.CreatedAt), nil

	case KindCommentCreated:
		var w wireCommentCreated
		if err := strictUnmarshal(env.Payload, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Kind, err)
		}
		return newCommentCreatedAt(refFromWire(w.User), w.Content, w.CreatedAt), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Kind)
	}
}

// strictUnmarshal — запрещает неизвестные поля и данные после объекта.
func strictUnmarshal(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return errors.New("trailing data")
	}
	return nil
}
