// Package cache provides Redis-backed read-through caching for hot
// configuration lookups on the widget path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/mappers"
	"stickybar/internal/infrastructure/persistence/models"
	"stickybar/internal/shared/logger"
)

const siteConfigKeyPrefix = "stickybar:config:"

// sentinel cached for sites with no stored configuration, so repeated
// widget requests for unconfigured sites skip the database too
const notConfiguredSentinel = "__not_configured__"

// CachedSiteConfigurationRepository decorates a site.Repository with a
// Redis read-through cache. Upsert writes through and refreshes the key.
type CachedSiteConfigurationRepository struct {
	inner  site.Repository
	client *redis.Client
	mapper mappers.SiteConfigurationMapper
	ttl    time.Duration
	logger logger.Interface
}

// NewCachedSiteConfigurationRepository creates a caching decorator around the
// given repository
func NewCachedSiteConfigurationRepository(
	inner site.Repository,
	client *redis.Client,
	ttl time.Duration,
	logger logger.Interface,
) site.Repository {
	return &CachedSiteConfigurationRepository{
		inner:  inner,
		client: client,
		mapper: mappers.NewSiteConfigurationMapper(),
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedSiteConfigurationRepository) Get(ctx context.Context, siteID vo.SiteID) (*site.SiteConfiguration, error) {
	key := r.buildKey(siteID)

	data, err := r.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if data == notConfiguredSentinel {
			return nil, nil
		}
		config, decodeErr := r.decode([]byte(data))
		if decodeErr == nil {
			return config, nil
		}
		// stale or corrupt entry, fall through to the database
		r.logger.Warnw("failed to decode cached site configuration", "site_id", siteID.Value(), "error", decodeErr)
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		r.logger.Warnw("redis get failed, falling back to database", "site_id", siteID.Value(), "error", err)
	}

	config, err := r.inner.Get(ctx, siteID)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, config)
	return config, nil
}

func (r *CachedSiteConfigurationRepository) Upsert(ctx context.Context, config *site.SiteConfiguration) error {
	if err := r.inner.Upsert(ctx, config); err != nil {
		return err
	}

	r.store(ctx, r.buildKey(config.SiteID()), config)
	return nil
}

func (r *CachedSiteConfigurationRepository) store(ctx context.Context, key string, config *site.SiteConfiguration) {
	var payload string
	if config == nil {
		payload = notConfiguredSentinel
	} else {
		model, err := r.mapper.ToModel(config)
		if err != nil {
			r.logger.Warnw("failed to map site configuration for cache", "key", key, "error", err)
			return
		}
		data, err := json.Marshal(model)
		if err != nil {
			r.logger.Warnw("failed to encode site configuration for cache", "key", key, "error", err)
			return
		}
		payload = string(data)
	}

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warnw("failed to store site configuration in cache", "key", key, "error", err)
	}
}

func (r *CachedSiteConfigurationRepository) decode(data []byte) (*site.SiteConfiguration, error) {
	var model models.SiteConfigurationModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to decode cached configuration: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CachedSiteConfigurationRepository) buildKey(siteID vo.SiteID) string {
	return siteConfigKeyPrefix + siteID.Value()
}
