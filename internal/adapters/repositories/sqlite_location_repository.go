package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"trip-route-service/internal/domain"
)

// SQLite-backed implementation of the LocationRepository port.
type SqliteLocationRepository struct{ DB *sql.DB }

func NewSqliteLocationRepository(db *sql.DB) *SqliteLocationRepository {
	return &SqliteLocationRepository{DB: db}
}

// Return all candidate locations stored in the database.
func (s *SqliteLocationRepository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location repository: DB is nil")
	}

	query := `
	SELECT
		location_id,
		name,
		category,
		latitude,
		longitude,
		price,
		rating
	FROM locations
	ORDER BY location_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0, 64)
	for rows.Next() {
		var (
			loc      domain.Location
			category string
			price    sql.NullFloat64
			rating   sql.NullFloat64
		)
		err := rows.Scan(&loc.ID, &loc.Name, &category, &loc.Coords.Lat, &loc.Coords.Lon, &price, &rating)
		if err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}

		loc.Category = domain.Category(category)
		loc.Price = price.Float64
		loc.Rating = rating.Float64
		locations = append(locations, &loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}
