package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// Cache, değişmez referans verisi (paket kataloğu gibi) için küçük bir
// Redis cache'idir. Redis'e ulaşılamıyorsa client nil kalır ve tüm
// operasyonlar sessizce no-op olur; uygulama cache'siz çalışmaya devam eder.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr, password string) *Cache {
	if addr == "" {
		return &Cache{ttl: defaultTTL}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	// Kısa timeout ile ping at, başarısızsa cache devre dışı
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return &Cache{ttl: defaultTTL}
	}

	return &Cache{client: client, ttl: defaultTTL}
}

// Get, anahtarı dest'e çözer; cache kapalıysa veya kayıt yoksa false döner
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(data, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.client.Set(ctx, key, data, c.ttl)
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if c.client == nil {
		return
	}

	c.client.Del(ctx, key)
}
