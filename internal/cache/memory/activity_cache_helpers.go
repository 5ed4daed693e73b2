package memory

import (
	"container/list"
	"time"

	"github.com/abhijeet3015/socialstream/internal/domain"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
)

// put — вставка/обновление ленты под блокировкой.
func (c *FeedCacheLRU) put(username string, feed []*domain.Activity, now time.Time) {
	if elem, ok := c.index[username]; ok {
		ent := elem.Value.(*entry)
		ent.feed = feed
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		username:  username,
		feed:      feed,
		expiresAt: c.expiryFrom(now),
	})
	c.index[username] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
}

// evictLRU — удаляет наименее используемую ленту.
func (c *FeedCacheLRU) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *FeedCacheLRU) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.username)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *FeedCacheLRU) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения от текущего времени.
func (c *FeedCacheLRU) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет истёкшие ленты из хвоста до первой живой.
func (c *FeedCacheLRU) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if !c.isExpired(ent, now) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}

func trimFeed(feed []*domain.Activity, max int) []*domain.Activity {
	if len(feed) <= max {
		return feed
	}
	return feed[:max]
}

func cloneActivity(a *domain.Activity) *domain.Activity {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Payload = append([]byte(nil), a.Payload...)
	return &cp
}

func cloneFeed(feed []*domain.Activity) []*domain.Activity {
	if feed == nil {
		return nil
	}
	out := make([]*domain.Activity, len(feed))
	for i, a := range feed {
		out[i] = cloneActivity(a)
	}
	return out
}
