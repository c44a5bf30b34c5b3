package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
)

// StatsRepository aggregates the counters shown on the admin dashboard.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// DashboardStats collects all dashboard counters in a single round trip.
func (r *StatsRepository) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	sqlStr := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM sub_categories),
			(SELECT COUNT(*) FROM notes),
			(SELECT COUNT(*) FROM webinars),
			(SELECT COUNT(*) FROM contact_messages WHERE NOT resolved)`

	var stats dto.DashboardStats
	err := r.db.QueryRow(ctx, sqlStr).Scan(
		&stats.Users, &stats.Categories, &stats.SubCategories,
		&stats.Notes, &stats.Webinars, &stats.UnresolvedMessages,
	)
	if err != nil {
		return nil, fmt.Errorf("error collecting dashboard stats: %w", err)
	}

	return &stats, nil
}
