package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/abhijeet3015/socialstream/config"
	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/kafka"
	"github.com/abhijeet3015/socialstream/internal/usecase"
	"github.com/abhijeet3015/socialstream/pkg/logger"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
	"github.com/abhijeet3015/socialstream/pkg/validate"
	"github.com/joho/godotenv"
)

// CLI для демо-публикации событий: по одному событию каждого вида
// (режим по умолчанию) либо реплей JSONL-файла с конвертами.
func main() {
	username := flag.String("username", "alice", "demo actor username")
	email := flag.String("email", "alice@example.com", "demo actor email")
	inputPath := flag.String("in", "", "path to events .jsonl (one envelope per line); empty = built-in demo set")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	metrics.MustRegister()

	ctx := context.Background()

	producer := kafka.NewProducer(&kafka.ProducerConfig{
		Brokers:      cfg.Kafka.Brokers,
		BatchTimeout: cfg.Kafka.BatchTimeout,
	}, logg)

	publisher := usecase.NewActivityPublisher(producer, usecase.TopicMap{
		Users:    cfg.Topics.Users,
		Profiles: cfg.Topics.Profiles,
		Posts:    cfg.Topics.Posts,
		Comments: cfg.Topics.Comments,
	}, logg)

	var published, failed int
	if *inputPath != "" {
		published, failed = replayFile(ctx, publisher, *inputPath)
	} else {
		published, failed = publishDemoSet(ctx, publisher, *username, *email)
	}

	fmt.Fprintf(os.Stderr, "seed done: %d published / %d failed\n", published, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// publishDemoSet — по одному событию каждого вида для одного пользователя.
func publishDemoSet(ctx context.Context, p *usecase.ActivityPublisher, username, email string) (published, failed int) {
	user := domain.NewUserRef(username, email)

	events := []domain.Event{
		domain.NewUserCreated(username, email),
		domain.NewProfileCreated(user, "Alice", "Liddell", "This is my bio", 7079840969),
		domain.NewPostCreated(user, "hello", "world"),
		domain.NewCommentCreated(user, "This is my comment"),
	}

	for _, ev := range events {
		if err := p.PublishEvent(ctx, ev); err != nil {
			fmt.Fprintf(os.Stderr, "publish %s: %v\n", ev.Kind(), err)
			failed++
			continue
		}
		published++
	}
	return published, failed
}

// replayFile — построчный реплей JSONL: каждая строка — конверт события.
// Строка сначала декодируется и валидируется, потом публикуется.
func replayFile(ctx context.Context, p *usecase.ActivityPublisher, path string) (published, failed int) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
		return 0, 1
	}
	defer file.Close()

	validator := validate.NewActivityValidator()

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}

		ev, err := domain.Decode(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: decode: %v\n", line, err)
			failed++
			continue
		}
		if err := validator.Validate(ctx, domain.ActivityFromEvent(ev, raw)); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
			failed++
			continue
		}

		if err := p.PublishEvent(ctx, ev); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: publish: %v\n", line, err)
			failed++
			continue
		}
		published++
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "scan %s: %v\n", path, err)
		failed++
	}
	return published, failed
}
