package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/abhijeet3015/socialstream/internal/kafka/mocks"
	"github.com/abhijeet3015/socialstream/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// runAsync запускает Consumer.Run в отдельном горутине и возвращает канал с ошибкой.
func runAsync(ctx context.Context, c *Consumer) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	return errCh
}

func newTestConsumer(r reader, h messageHandler) *Consumer {
	return &Consumer{
		reader: r, handler: h, log: nopLogger{},
		pollTimeout:    50 * time.Millisecond,
		processTimeout: 30 * time.Millisecond,
		idleDelay:      5 * time.Millisecond,
		retryDelay:     5 * time.Millisecond,
	}
}

func waitCanceled(t *testing.T, errCh <-chan error) {
	t.Helper()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Успешная обработка + коммит
func TestRun_OK_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	rc := kafka.ReaderConfig{GroupTopics: []string{"users"}, GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: сообщение обрабатывается
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Topic: "users", Offset: 1, Value: []byte("ok")}, nil)
	h.EXPECT().HandleMessage(gomock.Any(), []byte("ok")).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)

	// 2-й fetch блокируется до отмены контекста
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).AnyTimes()

	c := newTestConsumer(r, h)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	waitCanceled(t, errCh)
}

// Невалидное сообщение => тоже коммитим (чтобы не ретраить мусор)
func TestRun_InvalidActivity_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	rc := kafka.ReaderConfig{GroupTopics: []string{"users"}, GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: обработчик вернул ErrInvalidActivity, оффсет всё равно коммитится
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Topic: "users", Offset: 7, Value: []byte("bad")}, nil)
	h.EXPECT().HandleMessage(gomock.Any(), []byte("bad")).Return(validate.ErrInvalidActivity)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)

	// 2-й fetch будет ждать отмены
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).AnyTimes()

	c := newTestConsumer(r, h)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	waitCanceled(t, errCh)
}

// Временная ошибка обработчика (БД/сеть/таймаут) => НЕ коммитим
func TestRun_TemporaryFailure_NoCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	rc := kafka.ReaderConfig{GroupTopics: []string{"users"}, GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: получили сообщение, обработчик упал "временной" ошибкой -> CommitMessages НЕ вызывается
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Topic: "users", Offset: 2, Value: []byte("x")}, nil)
	h.EXPECT().HandleMessage(gomock.Any(), []byte("x")).Return(errors.New("db down"))
	// Никаких r.EXPECT().CommitMessages(...) специально НЕ ставим:
	// если Consumer по ошибке его вызовет — тест упадёт как "unexpected call".

	// 2-й fetch блокируется до отмены
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).AnyTimes()

	c := newTestConsumer(r, h)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	waitCanceled(t, errCh)
}

// Пустой poll (дедлайн poll-контекста) — не ошибка: короткая idle-пауза,
// опрос продолжается без эскалации задержек.
func TestRun_EmptyPoll_KeepsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	rc := kafka.ReaderConfig{GroupTopics: []string{"users"}, GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	var fetches int64
	// Данных нет: каждый fetch висит до дедлайна своего poll-контекста.
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			atomic.AddInt64(&fetches, 1)
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).AnyTimes()

	c := newTestConsumer(r, h)
	c.pollTimeout = 5 * time.Millisecond
	c.idleDelay = 2 * time.Millisecond
	// Если бы пустой poll считался ошибкой, второй опрос случился бы
	// только через retryDelay — позже, чем живёт контекст теста.
	c.retryDelay = 1 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
	if n := atomic.LoadInt64(&fetches); n < 3 {
		t.Fatalf("want at least 3 polls, got %d", n)
	}
}

// Ошибки FetchMessage ретраятся с фиксированной паузой; по отмене контекста — корректный выход
func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	rc := kafka.ReaderConfig{GroupTopics: []string{"users"}, GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	var fetches int64
	// Всегда возвращаем ошибку брокера; Consumer ждёт retryDelay и повторяет,
	// пока не отменится контекст
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(_ context.Context) (kafka.Message, error) {
			atomic.AddInt64(&fetches, 1)
			return kafka.Message{}, errors.New("broker error")
		}).AnyTimes()

	c := newTestConsumer(r, h)

	// Короткий таймаут, чтобы быстро выйти
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
	if n := atomic.LoadInt64(&fetches); n < 2 {
		t.Fatalf("want at least 2 polls, got %d", n)
	}
}

// CommitMessages вернул ошибку — получаем предупреждение; цикл живёт дальше
func TestRun_CommitWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	rc := kafka.ReaderConfig{GroupTopics: []string{"users"}, GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: обработчик работает, но CommitMessages возвращает ошибку — не должен падать
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Topic: "users", Offset: 3, Value: []byte("ok")}, nil)
	h.EXPECT().HandleMessage(gomock.Any(), []byte("ok")).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("temporary"))

	// 2-й fetch блокируется до отмены
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).AnyTimes()

	c := newTestConsumer(r, h)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	waitCanceled(t, errCh)
}

// Close() прокидывает вызов в reader.Close() ровно один раз
func TestClose_DelegatesToReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, h)
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from Close, got %v", err)
	}
	// Повторный Close — no-op.
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from second Close, got %v", err)
	}
}

// Невалидная конфигурация — фатальная ошибка конструктора
func TestNewConsumer_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := mocks.NewMockmessageHandler(ctrl)

	cases := []struct {
		name string
		cfg  ConsumerConfig
	}{
		{"no brokers", ConsumerConfig{Topics: []string{"users"}, GroupID: "g1"}},
		{"no topics", ConsumerConfig{Brokers: []string{"b:9092"}, GroupID: "g1"}},
		{"empty topic", ConsumerConfig{Brokers: []string{"b:9092"}, Topics: []string{"users", " "}, GroupID: "g1"}},
		{"empty group", ConsumerConfig{Brokers: []string{"b:9092"}, Topics: []string{"users"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewConsumer(&tc.cfg, h, nopLogger{}); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
