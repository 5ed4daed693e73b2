package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
)

var _ ports.ActivityCache = (*FeedCacheLRU)(nil)

// entry — лента одного пользователя: свежие записи в начале среза.
type entry struct {
	username  string
	feed      []*domain.Activity
	expiresAt time.Time
}

// FeedCacheLRU — LRU+TTL кэш лент по пользователю.
// capacity ограничивает число пользователей, perUser — длину одной ленты.
type FeedCacheLRU struct {
	capacity int
	perUser  int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewFeedCacheLRU(capacity, perUser int, ttl time.Duration) *FeedCacheLRU {
	if capacity <= 0 {
		capacity = 1
	}
	if perUser <= 0 {
		perUser = 1
	}
	return &FeedCacheLRU{
		capacity: capacity,
		perUser:  perUser,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *FeedCacheLRU) Get(_ context.Context, username string) ([]*domain.Activity, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[username]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneFeed(ent.feed), true
}

func (c *FeedCacheLRU) Set(_ context.Context, username string, feed []*domain.Activity) error {
	if username == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.put(username, cloneFeed(trimFeed(feed, c.perUser)), now)
	return nil
}

// Add — добавляет запись в начало ленты пользователя; хвост обрезается
// до perUser. Отсутствующая лента создаётся из одной записи.
func (c *FeedCacheLRU) Add(_ context.Context, a *domain.Activity) error {
	if a == nil || a.Username == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	var feed []*domain.Activity
	if elem, ok := c.index[a.Username]; ok {
		ent := elem.Value.(*entry)
		if !c.isExpired(ent, now) {
			feed = ent.feed
		}
	}

	feed = append([]*domain.Activity{cloneActivity(a)}, feed...)
	c.put(a.Username, trimFeed(feed, c.perUser), now)
	return nil
}

// WarmUp — массовая загрузка. items ожидаются от свежих к старым,
// поэтому добавляем в обратном порядке.
func (c *FeedCacheLRU) WarmUp(ctx context.Context, items []*domain.Activity) error {
	for i := len(items) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Add(ctx, items[i]); err != nil {
			return err
		}
	}
	return nil
}
