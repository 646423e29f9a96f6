package db

import (
	"fmt"
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Only bearer-token user lookups are cached; dashboard stats, budgets and
// subscription state are read fresh on every request.
var (
	Cache         *ristretto.Cache
	UserCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func UserCacheKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

func SetUserCache(cacheKey string, value interface{}) {
	UserCacheKeys.Lock()
	UserCacheKeys.m[cacheKey] = struct{}{}
	UserCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelUserCache(cacheKey string) {
	UserCacheKeys.Lock()
	delete(UserCacheKeys.m, cacheKey)
	UserCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllUserCaches() {
	UserCacheKeys.Lock()
	for key := range UserCacheKeys.m {
		Cache.Del(key)
	}
	UserCacheKeys.m = make(map[string]struct{})
	UserCacheKeys.Unlock()
}
