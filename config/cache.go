package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Caches for the dashboard read endpoints. The assistant itself never
	// consults these: each assistant query re-fetches raw rows.
	RankingCache *cache.Cache
	TurnoutCache *cache.Cache
)

const (
	rankingCacheDuration = 5 * time.Minute
	turnoutCacheDuration = 5 * time.Minute

	rankingCleanupInterval = 15 * time.Minute
	turnoutCleanupInterval = 15 * time.Minute
)

func InitCache() {
	RankingCache = cache.New(rankingCacheDuration, rankingCleanupInterval)
	TurnoutCache = cache.New(turnoutCacheDuration, turnoutCleanupInterval)
}

func ClearAllCaches() {
	RankingCache.Flush()
	TurnoutCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
