package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/blogs"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/contacts"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/products"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

const recentItemCount = 5

// DashboardStats aggregates the per-table counters shown on the admin
// dashboard, plus the newest few records of each kind.
type DashboardStats struct {
	Blogs    *blogs.Stats    `json:"blogs"`
	Products *products.Stats `json:"products"`
	Contacts *contacts.Stats `json:"contacts"`

	RecentBlogs    []*models.Blog    `json:"recentBlogs"`
	RecentProducts []*models.Product `json:"recentProducts"`
	RecentContacts []*models.Contact `json:"recentContacts"`
}

// DashboardService builds the admin dashboard snapshot.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m, now: time.Now}
}

// GetStats collects counters and recent records across all tables.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	blogRepo := s.repomanager.Blogs(s.db)
	productRepo := s.repomanager.Products(s.db)
	contactRepo := s.repomanager.Contacts(s.db)

	out := &DashboardStats{}
	var err error

	if out.Blogs, err = blogRepo.GetStats(ctx); err != nil {
		return nil, err
	}
	if out.Products, err = productRepo.GetStats(ctx); err != nil {
		return nil, err
	}
	since := s.now().AddDate(0, 0, -7)
	if out.Contacts, err = contactRepo.GetStats(ctx, since); err != nil {
		return nil, err
	}

	if out.RecentBlogs, err = blogRepo.Recent(ctx, recentItemCount); err != nil {
		return nil, err
	}
	if out.RecentProducts, err = productRepo.Recent(ctx, recentItemCount); err != nil {
		return nil, err
	}
	if out.RecentContacts, err = contactRepo.Recent(ctx, recentItemCount); err != nil {
		return nil, err
	}

	return out, nil
}
