package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/ports/mocks"
	"github.com/abhijeet3015/socialstream/internal/usecase"
)

var testTopics = usecase.TopicMap{
	Users:    "users",
	Profiles: "profiles",
	Posts:    "posts",
	Comments: "comments",
}

func TestTopicMap_ForKind(t *testing.T) {
	cases := []struct {
		kind domain.EventKind
		want string
	}{
		{domain.KindUserCreated, "users"},
		{domain.KindProfileCreated, "profiles"},
		{domain.KindPostCreated, "posts"},
		{domain.KindCommentCreated, "comments"},
	}
	for _, tc := range cases {
		got, err := testTopics.ForKind(tc.kind)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.kind, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.kind, got, tc.want)
		}
	}

	if _, err := testTopics.ForKind(domain.EventKind("nope")); err == nil {
		t.Error("unknown kind must be an error")
	}
}

// Каждый вид события уходит в свой топик; ключ — username автора;
// payload декодируется обратно в то же событие.
func TestPublishEvent_RoutesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mocks.NewMockEventPublisher(ctrl)
	p := usecase.NewActivityPublisher(producer, testTopics, nopLogger{})

	user := domain.NewUserRef("alice", "alice@example.com")
	cases := []struct {
		ev        domain.Event
		wantTopic string
	}{
		{domain.NewUserCreated("alice", "alice@example.com"), "users"},
		{domain.NewProfileCreated(user, "Alice", "Liddell", "bio", 1), "profiles"},
		{domain.NewPostCreated(user, "t", "c"), "posts"},
		{domain.NewCommentCreated(user, "c"), "comments"},
	}

	for _, tc := range cases {
		ev := tc.ev
		producer.EXPECT().
			Publish(gomock.Any(), tc.wantTopic, []byte("alice"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ []byte, value []byte) error {
				got, err := domain.Decode(value)
				if err != nil {
					t.Errorf("%s: decode published value: %v", ev.Kind(), err)
					return nil
				}
				if got.Kind() != ev.Kind() {
					t.Errorf("kind: got %q, want %q", got.Kind(), ev.Kind())
				}
				return nil
			})

		if err := p.PublishEvent(context.Background(), tc.ev); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.ev.Kind(), err)
		}
	}
}

func TestPublishEvent_ProducerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mocks.NewMockEventPublisher(ctrl)
	p := usecase.NewActivityPublisher(producer, testTopics, nopLogger{})

	wantErr := errors.New("broker down")
	producer.EXPECT().Publish(gomock.Any(), "users", gomock.Any(), gomock.Any()).Return(wantErr)

	err := p.UserCreated(context.Background(), "alice", "alice@example.com")
	if !errors.Is(err, wantErr) {
		t.Fatalf("want producer error, got %v", err)
	}
}

// Обёртки видов транслируются в PublishEvent без искажений.
func TestWrappers_DelegateToPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mocks.NewMockEventPublisher(ctrl)
	p := usecase.NewActivityPublisher(producer, testTopics, nopLogger{})

	user := domain.NewUserRef("bob", "bob@example.com")

	producer.EXPECT().Publish(gomock.Any(), "posts", []byte("bob"), gomock.Any()).Return(nil)
	if err := p.PostCreated(context.Background(), user, "title", "content"); err != nil {
		t.Fatalf("PostCreated: %v", err)
	}

	producer.EXPECT().Publish(gomock.Any(), "comments", []byte("bob"), gomock.Any()).Return(nil)
	if err := p.CommentCreated(context.Background(), user, "comment"); err != nil {
		t.Fatalf("CommentCreated: %v", err)
	}

	producer.EXPECT().Publish(gomock.Any(), "profiles", []byte("bob"), gomock.Any()).Return(nil)
	if err := p.ProfileCreated(context.Background(), user, "Bob", "Jones", "bio", 1); err != nil {
		t.Fatalf("ProfileCreated: %v", err)
	}
}
