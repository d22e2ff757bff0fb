package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dalevdmerwe/salon-booking/internal/models"
)

const statsCacheTTL = 5 * time.Minute

// VisitStats aggregates a tenant's traffic over the last N days.
type VisitStats struct {
	TotalVisits       int64   `json:"total_visits"`
	UniqueVisitors    int64   `json:"unique_visitors"`
	UniqueSessions    int64   `json:"unique_sessions"`
	AvgDailyVisits    float64 `json:"avg_daily_visits"`
	MobilePercentage  float64 `json:"mobile_percentage"`
	DesktopPercentage float64 `json:"desktop_percentage"`
	TabletPercentage  float64 `json:"tablet_percentage"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// StatsService aggregates site_visits, caching results in redis.
// Analytics is advisory end to end: a cache failure falls through to
// the database, and callers treat errors as "no stats".
type StatsService struct {
	db  *gorm.DB
	rdb *redis.Client
	log zerolog.Logger
}

func NewStatsService(db *gorm.DB, rdb *redis.Client, log zerolog.Logger) *StatsService {
	return &StatsService{
		db:  db,
		rdb: rdb,
		log: log.With().Str("component", "analytics_stats").Logger(),
	}
}

type statsRow struct {
	TotalVisits    int64
	UniqueVisitors int64
	UniqueSessions int64
	MobileVisits   int64
	DesktopVisits  int64
	TabletVisits   int64
}

func (s *StatsService) GetVisitStats(
	ctx context.Context,
	tenantID string,
	days int,
) (*VisitStats, error) {

	if days <= 0 {
		days = 30
	}

	key := fmt.Sprintf("salon:stats:%s:%d", tenantID, days)

	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	since := time.Now().AddDate(0, 0, -days)

	var row statsRow
	err := s.db.WithContext(ctx).
		Model(&models.SiteVisit{}).
		Select(
			"COUNT(*) AS total_visits",
			"COUNT(DISTINCT visitor_id) AS unique_visitors",
			"COUNT(DISTINCT session_id) AS unique_sessions",
			"COUNT(*) FILTER (WHERE device_type = 'mobile') AS mobile_visits",
			"COUNT(*) FILTER (WHERE device_type = 'desktop') AS desktop_visits",
			"COUNT(*) FILTER (WHERE device_type = 'tablet') AS tablet_visits",
		).
		Where("tenant_id = ? AND created_at >= ?", tenantID, since).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate visit stats: %w", err)
	}

	stats := buildStats(row, days)
	s.cacheSet(ctx, key, stats)

	return stats, nil
}

func buildStats(row statsRow, days int) *VisitStats {
	stats := &VisitStats{
		TotalVisits:    row.TotalVisits,
		UniqueVisitors: row.UniqueVisitors,
		UniqueSessions: row.UniqueSessions,
		AvgDailyVisits: float64(row.TotalVisits) / float64(days),
	}

	if row.TotalVisits > 0 {
		total := float64(row.TotalVisits)
		stats.MobilePercentage = 100 * float64(row.MobileVisits) / total
		stats.DesktopPercentage = 100 * float64(row.DesktopVisits) / total
		stats.TabletPercentage = 100 * float64(row.TabletVisits) / total
	}

	return stats
}

// GetDailyVisits returns per-day visit counts for the last N days.
func (s *StatsService) GetDailyVisits(
	ctx context.Context,
	tenantID string,
	days int,
) ([]DailyCount, error) {

	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	var rows []DailyCount
	err := s.db.WithContext(ctx).
		Model(&models.SiteVisit{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date", "COUNT(*) AS count").
		Where("tenant_id = ? AND created_at >= ?", tenantID, since).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate daily visits: %w", err)
	}

	return rows, nil
}

// --------------------------------------------------
// Cache
// --------------------------------------------------

func (s *StatsService) cacheGet(ctx context.Context, key string) *VisitStats {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		return nil
	}

	var stats VisitStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}

	return &stats
}

func (s *StatsService) cacheSet(ctx context.Context, key string, stats *VisitStats) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, key, raw, statsCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}
