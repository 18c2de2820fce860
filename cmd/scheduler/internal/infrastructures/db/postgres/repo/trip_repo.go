package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/infrastructures/db/model"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) GetTrip(ctx context.Context, id models.TripID) (models.Trip, error) {
	const query = `
		SELECT
			id::text,
			title,
			start_date,
			end_date,
			COALESCE(time_zone_id, '')
		FROM trips
		WHERE id::text = $1
	`

	var row model.TripRow
	err := r.db.QueryRow(ctx, query, strings.TrimSpace(string(id))).Scan(
		&row.ID,
		&row.Title,
		&row.StartDate,
		&row.EndDate,
		&row.TimeZoneID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Trip{}, derr.ErrTripNotFound
		}
		return models.Trip{}, fmt.Errorf("query trip by id: %w", err)
	}

	return row.ToDomain(), nil
}

func (r *Repository) ListBookings(ctx context.Context, id models.TripID, from, to time.Time) ([]models.Booking, error) {
	const query = `
		SELECT
			id::text,
			category,
			COALESCE(type, ''),
			COALESCE(title, ''),
			start_at,
			end_at
		FROM bookings
		WHERE trip_id::text = $1
		  AND start_at >= $2
		  AND start_at < $3
		ORDER BY start_at ASC
	`

	rows, err := r.db.Query(ctx, query, strings.TrimSpace(string(id)), from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0, 16)
	for rows.Next() {
		var row model.BookingRow
		if err := rows.Scan(
			&row.ID,
			&row.Category,
			&row.Type,
			&row.Title,
			&row.StartAt,
			&row.EndAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
