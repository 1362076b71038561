// package reportcache caches judge reports in Redis so the platform can poll
// a submission's verdict without hitting PostgreSQL.
package reportcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/domain"
)

const (
	reportKeyPrefix  = "judge:report:"
	reportExpiration = 30 * time.Minute
)

// ReportCache implements the ReportCache interface with Redis
type ReportCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewReportCache creates a new Redis report cache
func NewReportCache(redisClient *redis.Client, logger primary.Logger) *ReportCache {
	return &ReportCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// SetReport caches a report with expiration
func (c *ReportCache) SetReport(ctx context.Context, report *domain.JudgeReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		c.logger.Error("Failed to marshal judge report", "error", err)
		return fmt.Errorf("failed to marshal judge report: %w", err)
	}

	reportKey := fmt.Sprintf("%s%s", reportKeyPrefix, report.SubmissionID)
	if err := c.redisClient.Set(ctx, reportKey, reportJSON, reportExpiration).Err(); err != nil {
		c.logger.Error("Failed to cache judge report", "error", err)
		return fmt.Errorf("failed to cache judge report: %w", err)
	}

	return nil
}

// GetReport retrieves a cached report, nil on a cache miss
func (c *ReportCache) GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error) {
	reportKey := fmt.Sprintf("%s%s", reportKeyPrefix, submissionID)
	reportJSON, err := c.redisClient.Get(ctx, reportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached report: %w", err)
	}

	var report domain.JudgeReport
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}

	return &report, nil
}
