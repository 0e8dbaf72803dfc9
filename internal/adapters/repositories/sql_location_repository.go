package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

// SQLLocationRepository is the Postgres-backed implementation of the
// LocationRepository port. The schema is provisioned out of band; this
// repository only reads.
type SQLLocationRepository struct {
	DB *sql.DB
}

func NewSQLLocationRepository(db *sql.DB) *SQLLocationRepository {
	return &SQLLocationRepository{DB: db}
}

// Return all candidate locations stored in the database.
func (s *SQLLocationRepository) ListLocations(ctx context.Context) (_ []*domain.Location, err error) {
	defer obs.Time(ctx, "locations.repo.ListLocations")(&err)

	if s.DB == nil {
		return nil, errors.New("location repository: db is nil")
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
		if err := rows.Scan(&loc.ID, &loc.Name, &category, &loc.Coords.Lat, &loc.Coords.Lon, &price, &rating); err != nil {
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
