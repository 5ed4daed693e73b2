package usecase

import (
	"context"
	"fmt"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/ports"
)

// TopicMap — топик на каждый вид события.
type TopicMap struct {
	Users    string
	Profiles string
	Posts    string
	Comments string
}

// ForKind — выбор топика по дискриминатору события.
func (t TopicMap) ForKind(kind domain.EventKind) (string, error) {
	switch kind {
	case domain.KindUserCreated:
		return t.Users, nil
	case domain.KindProfileCreated:
		return t.Profiles, nil
	case domain.KindPostCreated:
		return t.Posts, nil
	case domain.KindCommentCreated:
		return t.Comments, nil
	default:
		return "", fmt.Errorf("no topic for kind %q", kind)
	}
}

// ActivityPublisher — один механизм публикации для всех видов событий:
// вид — это аргумент (значение Event), а не отдельный класс продьюсера.
// Ключ партиционирования — username автора, поэтому события одного
// пользователя попадают в одну партицию и сохраняют порядок.
type ActivityPublisher struct {
	producer ports.EventPublisher
	topics   TopicMap
	log      ports.Logger
}

func NewActivityPublisher(producer ports.EventPublisher, topics TopicMap, log ports.Logger) *ActivityPublisher {
	return &ActivityPublisher{
		producer: producer,
		topics:   topics,
		log:      log,
	}
}

// PublishEvent — сериализует событие и публикует его в топик своего вида.
// Событие приходит уже валидным (за это отвечает веб-слой); здесь только
// кодирование и доставка.
func (p *ActivityPublisher) PublishEvent(ctx context.Context, ev domain.Event) error {
	topic, err := p.topics.ForKind(ev.Kind())
	if err != nil {
		return err
	}

	value, err := domain.Encode(ev)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ev.Kind(), err)
	}

	return p.producer.Publish(ctx, topic, []byte(ev.Actor()), value)
}

// Удобные обёртки для веб-слоя — тонкие, вся работа в PublishEvent.

func (p *ActivityPublisher) UserCreated(ctx context.Context, username, email string) error {
	return p.PublishEvent(ctx, domain.NewUserCreated(username, email))
}

func (p *ActivityPublisher) ProfileCreated(ctx context.Context, user domain.UserRef, firstName, lastName, bio string, contact int64) error {
	return p.PublishEvent(ctx, domain.NewProfileCreated(user, firstName, lastName, bio, contact))
}

func (p *ActivityPublisher) PostCreated(ctx context.Context, user domain.UserRef, title, content string) error {
	return p.PublishEvent(ctx, domain.NewPostCreated(user, title, content))
}

func (p *ActivityPublisher) CommentCreated(ctx context.Context, user domain.UserRef, content string) error {
	return p.PublishEvent(ctx, domain.NewCommentCreated(user, content))
}
