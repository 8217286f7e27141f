package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/blogs"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

// BlogService manages blog articles for both the public website (published
// only) and the admin surface (everything, drafts included).
type BlogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager) *BlogService {
	return &BlogService{db: db, repomanager: m, now: time.Now}
}

// ListPublished returns one page of published blogs, newest first.
func (s *BlogService) ListPublished(ctx context.Context, page, limit int) ([]*models.Blog, *Pagination, error) {
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Blogs(s.db)

	total, err := repo.CountPublished(ctx)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// ListAll returns one page of all blogs for the admin surface.
func (s *BlogService) ListAll(ctx context.Context, page, limit int) ([]*models.Blog, *Pagination, error) {
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Blogs(s.db)

	total, err := repo.CountAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// GetBySlug returns a published blog; drafts read as absent.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return s.repomanager.Blogs(s.db).GetBySlug(ctx, slug)
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	return s.repomanager.Blogs(s.db).GetByID(ctx, id)
}

// ListFeatured returns up to limit featured published blogs.
func (s *BlogService) ListFeatured(ctx context.Context, limit int) ([]*models.Blog, error) {
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return s.repomanager.Blogs(s.db).ListFeatured(ctx, limit)
}

// Search matches q against name, overview and description of published blogs.
func (s *BlogService) Search(ctx context.Context, q string, page, limit int) ([]*models.Blog, *Pagination, error) {
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Blogs(s.db)

	total, err := repo.CountSearch(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.Search(ctx, q, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// Create stores a new blog, deriving the slug from the name when absent.
func (s *BlogService) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if blog.Slug == "" {
		blog.Slug = Slugify(blog.Name)
	}
	if blog.PublishDate == "" {
		blog.PublishDate = s.now().Format("2006-01-02")
	}
	return s.repomanager.Blogs(s.db).Create(ctx, blog)
}

// Update replaces the stored blog, re-deriving the slug when the name changed
// and no explicit slug was supplied.
func (s *BlogService) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if blog.Slug == "" {
		blog.Slug = Slugify(blog.Name)
	}
	return s.repomanager.Blogs(s.db).Update(ctx, blog)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Blogs(s.db).Delete(ctx, id)
}

func (s *BlogService) GetStats(ctx context.Context) (*blogs.Stats, error) {
	return s.repomanager.Blogs(s.db).GetStats(ctx)
}

func (s *BlogService) Recent(ctx context.Context, limit int) ([]*models.Blog, error) {
	return s.repomanager.Blogs(s.db).Recent(ctx, limit)
}
