package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/abhijeet3015/socialstream/pkg/validate"
)

// FeedService — прикладная логика ленты активности (без знаний о транспорте).
// На стороне консьюмера это downstream-обработчик сообщений из брокера.
type FeedService struct {
	repo      ports.ActivityRepository
	cache     ports.ActivityCache
	log       ports.Logger
	validator ports.ActivityValidator
}

// NewFeedService — DI-конструктор.
func NewFeedService(
	repo ports.ActivityRepository,
	cache ports.ActivityCache,
	log ports.Logger,
	validator ports.ActivityValidator,
) *FeedService {
	return &FeedService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// HandleMessage — обработать сырое сообщение из брокера.
// Шаги:
//  1. строгое декодирование конверта (ошибка → ErrInvalidActivity: мусор
//     нельзя чинить повторной доставкой);
//  2. валидация собранной записи;
//  3. сохранение в БД (временные ошибки уходят наверх без обёртки —
//     консьюмер повторит доставку);
//  4. запись в кэш ленты (best effort).
func (s *FeedService) HandleMessage(ctx context.Context, raw []byte) error {
	ev, err := domain.Decode(raw)
	if err != nil {
		s.log.Warnf(ctx, "undecodable message: %v", err)
		return fmt.Errorf("%w: %v", validate.ErrInvalidActivity, err)
	}

	a := domain.ActivityFromEvent(ev, raw)

	if err := s.validator.Validate(ctx, a); err != nil {
		s.log.Warnf(ctx, "validation failed kind=%s user=%s err=%v", a.Kind, a.Username, err)
		return err
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return fmt.Errorf("save activity: %w", err)
	}

	if cacheErr := s.cache.Add(ctx, a); cacheErr != nil {
		s.log.Warnf(ctx, "cache.Add failed user=%s err=%v", a.Username, cacheErr)
	}

	s.log.Infof(ctx, "activity stored id=%d kind=%s user=%s", a.ID, a.Kind, a.Username)
	return nil
}

// Feed — лента пользователя: при offset=0 сначала кэш, при промахе — БД
// с записью результата в кэш.
func (s *FeedService) Feed(ctx context.Context, username string, limit, offset int) ([]*domain.Activity, error) {
	if offset == 0 {
		if feed, found := s.cache.Get(ctx, username); found {
			s.log.Infof(ctx, "cache hit user=%s", username)
			if len(feed) > limit {
				feed = feed[:limit]
			}
			return feed, nil
		}
		s.log.Infof(ctx, "cache miss user=%s", username)
	}

	start := time.Now()
	feed, err := s.repo.ListByUser(ctx, username, limit, offset)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListByUser failed user=%s err=%v", username, err)
		return nil, err
	}
	s.log.Infof(ctx, "db fetch user=%s took=%s", username, time.Since(start))

	if offset == 0 && len(feed) > 0 {
		if setErr := s.cache.Set(ctx, username, feed); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed user=%s err=%v", username, setErr)
		}
	}

	return feed, nil
}

// RecentActivity — последние n записей по всем пользователям.
func (s *FeedService) RecentActivity(ctx context.Context, n int) ([]*domain.Activity, error) {
	return s.repo.LastN(ctx, n)
}

// WarmUpCache — прогрев кэша последними n записями (например, при старте).
func (s *FeedService) WarmUpCache(ctx context.Context, n int) error {
	items, err := s.repo.LastN(ctx, n)
	if err != nil {
		return fmt.Errorf("warm-up: %w", err)
	}
	return s.cache.WarmUp(ctx, items)
}
