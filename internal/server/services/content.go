package services

import (
	"context"
	"database/sql"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

// ContentService manages page content blocks keyed by (section, pageType).
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContentService(db *sql.DB, m repomanager.RepositoryManager) *ContentService {
	return &ContentService{db: db, repomanager: m}
}

// ListPublic returns the blocks the website renders, archived excluded.
func (s *ContentService) ListPublic(ctx context.Context) ([]*models.Content, error) {
	return s.repomanager.Contents(s.db).ListPublic(ctx)
}

// ListAll returns every block, archived included; admin surface.
func (s *ContentService) ListAll(ctx context.Context) ([]*models.Content, error) {
	return s.repomanager.Contents(s.db).ListAll(ctx)
}

// GetBySectionPage returns the non-archived block for the key.
func (s *ContentService) GetBySectionPage(ctx context.Context, section, pageType string) (*models.Content, error) {
	if section == "" || !models.ValidContentPageType(pageType) {
		return nil, common.ErrValidation
	}
	return s.repomanager.Contents(s.db).GetBySectionPage(ctx, section, pageType)
}

func (s *ContentService) GetByID(ctx context.Context, id string) (*models.Content, error) {
	return s.repomanager.Contents(s.db).GetByID(ctx, id)
}

// Upsert creates the block or replaces the one sharing its (section, pageType)
// key, so re-saving a page never produces duplicates.
func (s *ContentService) Upsert(ctx context.Context, content *models.Content) (*models.Content, error) {
	if content.Section == "" || !models.ValidContentPageType(content.PageType) {
		return nil, common.ErrValidation
	}
	if content.Status == "" {
		content.Status = models.ContentStatusDraft
	}
	if !models.ValidContentStatus(content.Status) {
		return nil, common.ErrValidation
	}
	return s.repomanager.Contents(s.db).Upsert(ctx, content)
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Contents(s.db).Delete(ctx, id)
}
