package source

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// fakeFetcher — отдаёт заранее заданную последовательность результатов;
// после её исчерпания повторяет последний.
type fakeFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	calls   int
}

type fetchResult struct {
	payload []byte
	err     error
}

func (f *fakeFetcher) Fetch(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	r := f.results[i]
	return r.payload, r.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePublisher struct {
	mu        sync.Mutex
	published []publishedMsg
	err       error
}

type publishedMsg struct {
	topic string
	key   []byte
	value []byte
}

func (p *fakePublisher) Publish(_ context.Context, topic string, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, publishedMsg{topic: topic, key: key, value: value})
	return p.err
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func (p *fakePublisher) first() publishedMsg {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.published[0]
}

// Первый такт выполняется сразу, дальше — по тикеру.
func TestRun_PublishesOnEachTick(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{{payload: []byte(`{"t":1}`)}}}
	publisher := &fakePublisher{}

	r := NewRunner(fetcher, publisher, "weather_data", "London", 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Millisecond)
	defer cancel()

	if err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}

	// Немедленный первый такт + минимум два тика.
	if n := publisher.count(); n < 3 {
		t.Fatalf("want at least 3 publishes, got %d", n)
	}

	msg := publisher.first()
	if msg.topic != "weather_data" {
		t.Errorf("topic: got %q", msg.topic)
	}
	if string(msg.key) != "London" {
		t.Errorf("key: got %q", msg.key)
	}
	if string(msg.value) != `{"t":1}` {
		t.Errorf("value: got %s", msg.value)
	}
}

// Ошибка fetch'а пропускает такт: публикации нет, цикл живёт дальше.
func TestRun_FetchErrorSkipsCycle(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{err: errors.New("api down")},
		{payload: []byte(`{"t":2}`)},
	}}
	publisher := &fakePublisher{}

	r := NewRunner(fetcher, publisher, "weather_data", "London", 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()

	_ = r.Run(ctx)

	if fetcher.callCount() < 2 {
		t.Fatalf("runner must keep fetching after an error, got %d calls", fetcher.callCount())
	}
	// Первый такт (ошибка) публикации не дал, последующие — дали.
	if publisher.count() < 1 {
		t.Fatal("want at least 1 publish after recovery")
	}
	if got := string(publisher.first().value); got != `{"t":2}` {
		t.Errorf("first published value: got %s", got)
	}
}

// Ошибка публикации не останавливает цикл.
func TestRun_PublishErrorKeepsRunning(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{{payload: []byte(`{}`)}}}
	publisher := &fakePublisher{err: errors.New("broker down")}

	r := NewRunner(fetcher, publisher, "weather_data", "London", 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()

	if err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
	if publisher.count() < 2 {
		t.Fatalf("runner must keep publishing attempts, got %d", publisher.count())
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{{payload: []byte(`{}`)}}}
	publisher := &fakePublisher{}

	r := NewRunner(fetcher, publisher, "weather_data", "London", time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for runner to stop")
	}

	// Немедленный первый такт успел отработать до отмены.
	if publisher.count() != 1 {
		t.Fatalf("want exactly 1 publish, got %d", publisher.count())
	}
}
