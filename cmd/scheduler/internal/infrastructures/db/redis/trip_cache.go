package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

type TripCache struct {
	redis *redis.Client
}

func NewTripCache(redis *redis.Client) *TripCache {
	return &TripCache{redis: redis}
}

type cachedTrip struct {
	ID         models.TripID       `json:"id"`
	Title      string              `json:"title"`
	StartDate  models.CalendarDate `json:"startDate"`
	EndDate    models.CalendarDate `json:"endDate"`
	TimeZoneID string              `json:"timeZoneId,omitempty"`
}

func tripKey(id models.TripID) string {
	return fmt.Sprintf("trip:%s", id)
}

func (c *TripCache) GetByID(ctx context.Context, id models.TripID) (models.Trip, error) {
	data, err := c.redis.Get(ctx, tripKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Trip{}, derr.ErrTripNotFound
		}
		return models.Trip{}, fmt.Errorf("redis get trip by id: %w", err)
	}

	return decodeTrip([]byte(data))
}

func (c *TripCache) Set(ctx context.Context, trip models.Trip, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := encodeTrip(trip)
	if err != nil {
		return err
	}

	if err := c.redis.Set(ctx, tripKey(trip.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set trip: %w", err)
	}

	return nil
}

func encodeTrip(trip models.Trip) ([]byte, error) {
	data, err := json.Marshal(cachedTrip{
		ID:         trip.ID,
		Title:      trip.Title,
		StartDate:  trip.StartDate,
		EndDate:    trip.EndDate,
		TimeZoneID: trip.TimeZoneID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal trip for cache: %w", err)
	}
	return data, nil
}

func decodeTrip(data []byte) (models.Trip, error) {
	var cached cachedTrip
	if err := json.Unmarshal(data, &cached); err != nil {
		return models.Trip{}, fmt.Errorf("unmarshal cached trip: %w", err)
	}

	return models.Trip{
		ID:         cached.ID,
		Title:      cached.Title,
		StartDate:  cached.StartDate,
		EndDate:    cached.EndDate,
		TimeZoneID: cached.TimeZoneID,
	}, nil
}
