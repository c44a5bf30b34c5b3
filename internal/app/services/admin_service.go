package services

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
)

type statsRepository interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

// AdminService backs the admin dashboard.
type AdminService struct {
	statsRepo statsRepository
}

// NewAdminService creates a new admin service instance.
func NewAdminService(statsRepo statsRepository) *AdminService {
	return &AdminService{statsRepo: statsRepo}
}

// DashboardStats returns the catalog-wide counters.
func (s *AdminService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	return s.statsRepo.DashboardStats(ctx)
}
