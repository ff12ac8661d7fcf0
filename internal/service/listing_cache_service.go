package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"medimarket/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached public hospital searches
	hospitalListingKeyPrefix = "hospitals:approved:"

	// Cached listings expire on their own even if invalidation is missed
	listingCacheTTL = 5 * time.Minute
)

// ListingCacheService caches public hospital search results in Redis.
// Approval and rejection invalidate the whole listing keyspace since either
// changes which hospitals are publicly visible.
type ListingCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewListingCacheService(redisClient *redis.Client, log *logrus.Logger) *ListingCacheService {
	return &ListingCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

// GetHospitals returns the cached result for a filter, or nil on miss.
// Cache failures are non-fatal; the caller falls through to the database.
func (s *ListingCacheService) GetHospitals(ctx context.Context, filter *entity.HospitalFilter) ([]entity.Hospital, bool) {
	data, err := s.redisClient.Get(ctx, s.listingKey(filter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read hospital listing cache: %+v", err)
		}
		return nil, false
	}

	var hospitals []entity.Hospital
	if err := json.Unmarshal(data, &hospitals); err != nil {
		s.log.Warnf("Failed to decode hospital listing cache: %+v", err)
		return nil, false
	}
	return hospitals, true
}

// SetHospitals stores a search result under its filter key
func (s *ListingCacheService) SetHospitals(ctx context.Context, filter *entity.HospitalFilter, hospitals []entity.Hospital) {
	data, err := json.Marshal(hospitals)
	if err != nil {
		s.log.Warnf("Failed to encode hospital listing cache: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, s.listingKey(filter), data, listingCacheTTL).Err(); err != nil {
		s.log.Warnf("Failed to write hospital listing cache: %+v", err)
	}
}

// Invalidate drops every cached listing. Called after a hospital changes
// visibility (approve/reject).
func (s *ListingCacheService) Invalidate(ctx context.Context) {
	keys, err := s.redisClient.Keys(ctx, hospitalListingKeyPrefix+"*").Result()
	if err != nil {
		s.log.Warnf("Failed to list hospital listing cache keys: %+v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to invalidate hospital listing cache: %+v", err)
	}
}

// listingKey hashes the filter so every distinct search gets its own slot
func (s *ListingCacheService) listingKey(filter *entity.HospitalFilter) string {
	if filter == nil {
		filter = &entity.HospitalFilter{}
	}
	raw := fmt.Sprintf("q=%s|city=%s|type=%s|spec=%s",
		filter.Query, filter.City, filter.HospitalType, filter.Specialization)
	sum := sha256.Sum256([]byte(raw))
	return hospitalListingKeyPrefix + hex.EncodeToString(sum[:8])
}
