package httpapi

import (
	"github.com/avolkovs/sitekeeper/internal/logging"
	"github.com/avolkovs/sitekeeper/internal/server/ratelimit"
	"github.com/avolkovs/sitekeeper/internal/server/services"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	logger    logging.Logger
	admins    *services.AdminService
	blogs     *services.BlogService
	products  *services.ProductService
	contacts  *services.ContactService
	contents  *services.ContentService
	dashboard *services.DashboardService
	media     *services.MediaService
	limiter   *ratelimit.Limiter
}

// NewServer constructs the HTTP surface over the given services.
func NewServer(
	logger logging.Logger,
	admins *services.AdminService,
	blogs *services.BlogService,
	products *services.ProductService,
	contacts *services.ContactService,
	contents *services.ContentService,
	dashboard *services.DashboardService,
	media *services.MediaService,
	limiter *ratelimit.Limiter,
) *Server {
	return &Server{
		logger:    logger,
		admins:    admins,
		blogs:     blogs,
		products:  products,
		contacts:  contacts,
		contents:  contents,
		dashboard: dashboard,
		media:     media,
		limiter:   limiter,
	}
}
