package token_bucket

import (
	"sync"
	"time"
)

// KeyedLimiter держит отдельный TokenBucket на ключ (например, на чат),
// чтобы один пользователь, залипший на кнопке, не съедал лимит остальных.
type KeyedLimiter struct {
	capacity   int
	refillRate float64
	now        func() time.Time

	mu      sync.Mutex
	buckets map[int64]*TokenBucket
}

func NewKeyedLimiter(capacity int, refillRate float64) *KeyedLimiter {
	return &KeyedLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		now:        time.Now,
		buckets:    make(map[int64]*TokenBucket),
	}
}

func (k *KeyedLimiter) Allow(key int64) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		bucket = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = bucket
	}
	k.mu.Unlock()

	return bucket.Allow()
}

// Evict удаляет бакеты, к которым не обращались дольше idle. Возвращает число удаленных.
func (k *KeyedLimiter) Evict(idle time.Duration) int {
	threshold := k.now().Add(-idle)

	k.mu.Lock()
	defer k.mu.Unlock()

	evicted := 0
	for key, bucket := range k.buckets {
		if bucket.idleSince().Before(threshold) {
			delete(k.buckets, key)
			evicted++
		}
	}
	return evicted
}
