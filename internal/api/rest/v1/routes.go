package v1

import (
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/middleware"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/dashboard"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services holds every application service exposed by version 1.
type Services struct {
	Users          users.Service
	Auth           users.AuthService
	Addresses      crud.Service[addresses.Address, addresses.Input]
	PublicServices crud.Service[publicservices.PublicService, publicservices.Input]
	Applications   applications.Service
	PaymentMethods crud.Service[payments.PaymentMethod, payments.MethodInput]
	Recharges      payments.RechargeService
	Media          media.Service
	Categories     crud.Service[content.BlogCategory, content.CategoryInput]
	Posts          content.PostService
	Careers        crud.Service[content.Career, content.CareerInput]
	Centers        crud.Service[content.Center, content.CenterInput]
	TeamMembers    crud.Service[content.TeamMember, content.TeamMemberInput]
	Contacts       content.ContactService
	Dashboard      dashboard.Service
}

// Options configures the cross-cutting parts of the router. Zero values
// disable the corresponding feature.
type Options struct {
	RateLimiter      *middleware.RateLimiter
	Metrics          *middleware.Metrics
	Health           HealthCheck
	UploadDir        string
	UploadPublicPath string
	MaxUploadBytes   int64
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, s *Services, opts Options) {
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler())
		r.GET("/metrics", opts.Metrics.Expose())
	}
	if opts.UploadDir != "" && opts.UploadPublicPath != "" {
		r.Static(opts.UploadPublicPath, opts.UploadDir)
	}

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if opts.RateLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{opts.RateLimiter.Handler(), h}
	}

	systemHandler := NewSystemHandler(s.Dashboard, opts.Health)
	r.GET("/health", systemHandler.Health)

	v1 := r.Group(BasePath) // lookup in version file
	public := v1.Group("", middleware.OptionalAuth(s.Auth))
	authed := v1.Group("", middleware.Auth(s.Auth))
	admin := authed.Group("", middleware.RequireRole(users.RoleAdmin))

	// Auth Routes
	authHandler := NewAuthHandler(s.Auth)
	v1.POST("/auth/login", limited(authHandler.Login)...)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/change-password", authHandler.ChangePassword)

	// Users Routes
	userHandler := NewUserHandler(s.Users)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users", userHandler.List)
	authed.GET("/users/:id", userHandler.GetByID)
	admin.PATCH("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.DeleteByID)

	// Applications Routes
	applicationHandler := NewApplicationHandler(s.Applications)
	authed.POST("/applications", applicationHandler.Create)
	authed.GET("/applications", applicationHandler.List)
	authed.GET("/applications/:id", applicationHandler.GetByID)
	admin.PATCH("/applications/:id/status", applicationHandler.UpdateStatus)
	admin.DELETE("/applications/:id", applicationHandler.DeleteByID)

	// Recharge Routes
	rechargeHandler := NewRechargeHandler(s.Recharges)
	authed.POST("/recharges", rechargeHandler.Create)
	authed.GET("/recharges", rechargeHandler.List)
	authed.GET("/recharges/:id", rechargeHandler.GetByID)
	admin.PATCH("/recharges/:id/status", rechargeHandler.Review)
	admin.DELETE("/recharges/:id", rechargeHandler.DeleteByID)

	// Media Routes
	mediaHandler := NewMediaHandler(s.Media, opts.MaxUploadBytes)
	admin.POST("/media", mediaHandler.Upload)
	admin.GET("/media", mediaHandler.List)
	admin.GET("/media/:id", mediaHandler.GetByID)
	admin.DELETE("/media/:id", mediaHandler.DeleteByID)

	// Blog Routes
	postHandler := NewBlogPostHandler(s.Posts)
	registerCRUD(public, admin, "/blogs", postHandler)
	public.GET("/blogs/slug/:slug", postHandler.GetBySlug)
	registerCRUD(public, admin, "/blog-categories", NewCRUDHandler(s.Categories, "Blog category"))

	// Public Content Routes
	registerCRUD(public, admin, "/addresses", NewCRUDHandler(s.Addresses, "Address", textFilter("type"), idFilter("parent_id")))
	registerCRUD(public, admin, "/services", NewCRUDHandler(s.PublicServices, "Service", textFilter("status")))
	registerCRUD(public, admin, "/payment-methods", NewCRUDHandler(s.PaymentMethods, "Payment method", textFilter("status"), textFilter("account_type")))
	registerCRUD(public, admin, "/careers", NewCRUDHandler(s.Careers, "Career", textFilter("status"), textFilter("employment_type")))
	registerCRUD(public, admin, "/centers", NewCRUDHandler(s.Centers, "Center", idFilter("division_id"), idFilter("district_id")))
	registerCRUD(public, admin, "/team-members", newSortedCRUDHandler(s.TeamMembers, "Team member", sortDefault{column: "position", order: "asc"}))

	// Contact Routes
	contactHandler := NewContactHandler(s.Contacts)
	v1.POST("/contacts", limited(contactHandler.Submit)...)
	admin.GET("/contacts", contactHandler.List)
	admin.GET("/contacts/:id", contactHandler.Open)
	admin.DELETE("/contacts/:id", contactHandler.DeleteByID)

	// Dashboard Routes
	admin.GET("/dashboard/summary", systemHandler.Summary)
}

// registerCRUD exposes reads publicly and writes to admins only.
func registerCRUD(public, admin *gin.RouterGroup, path string, h CRUDHandler) {
	public.GET(path, h.List)
	public.GET(path+"/:id", h.GetByID)
	admin.POST(path, h.Create)
	admin.PATCH(path+"/:id", h.Update)
	admin.DELETE(path+"/:id", h.DeleteByID)
}
