package redis

import (
	"context"
	"encoding/json"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// statsKeyPrefix namespaces dashboard stats entries.
const statsKeyPrefix = "vidtube:dashboard:stats:"

// StatsCache is a cache-aside store for channel dashboard stats.
// Entries are short-lived; stats tolerate slight staleness.
type StatsCache struct {
	ttl time.Duration
}

// NewStatsCache returns a stats cache with the given entry lifetime.
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{ttl: ttl}
}

// GetStats returns cached stats for a channel, if present.
func (c *StatsCache) GetStats(ctx context.Context, channelID string) (*dto.ChannelStats, bool) {
	raw, err := Client.Get(ctx, statsKeyPrefix+channelID).Bytes()
	if err != nil {
		return nil, false
	}

	var stats dto.ChannelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.Warn("Dropping corrupt stats cache entry",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
		_ = Client.Del(ctx, statsKeyPrefix+channelID).Err()
		return nil, false
	}

	return &stats, true
}

// SetStats caches stats for a channel. Failures are logged, not
// surfaced; the cache is an optimization only.
func (c *StatsCache) SetStats(ctx context.Context, channelID string, stats *dto.ChannelStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := Client.Set(ctx, statsKeyPrefix+channelID, raw, c.ttl).Err(); err != nil {
		logger.Warn("Failed to cache channel stats",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
}
