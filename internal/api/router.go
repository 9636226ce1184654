package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/infinitechange/coaching-site/internal/api/handler"
	"github.com/infinitechange/coaching-site/internal/api/middleware"
	"github.com/infinitechange/coaching-site/internal/api/session"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
	"github.com/infinitechange/coaching-site/internal/core/service"
	"github.com/infinitechange/coaching-site/internal/core/token"
	"github.com/infinitechange/coaching-site/internal/infrastructure/config"
	"github.com/infinitechange/coaching-site/internal/infrastructure/db/sqlite"
)

const loginPagePath = "/admin/login"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger, mailer ports.Mailer, subscribers ports.SubscriberLog) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Renderer = handler.NewTemplateRenderer()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coaching"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, 0)
	sessions := session.NewManager(cfg.IsProduction())

	authService := service.NewAuthService(sqlite.NewUserRepository(db), codec, log)
	catalogService := service.NewCatalogService(sqlite.NewCatalogRepository(db), log)
	testimonialService := service.NewTestimonialService(sqlite.NewTestimonialRepository(db), log)
	contactService := service.NewContactService(mailer, cfg.SMTP.Receiver, log)
	newsletterService := service.NewNewsletterService(subscribers, log)

	authHandler := handler.NewAuthHandler(authService, sessions, codec)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	contactHandler := handler.NewContactHandler(contactService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	pages := handler.NewPagesHandler(catalogService, testimonialService)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)

	// --- Public content endpoints ---
	e.GET("/api/mindfulness-services", catalogHandler.PublicList(domain.KindMindfulness))
	e.GET("/api/counselling-services", catalogHandler.PublicList(domain.KindCounselling))
	e.GET("/api/beyond-words-services", catalogHandler.PublicList(domain.KindBeyondWords))
	e.GET("/api/testimonials", testimonialHandler.PublicList)

	// --- Contact and newsletter ---
	e.POST("/api/contact", contactHandler.Submit)
	e.POST("/api/newsletter", newsletterHandler.Subscribe)

	// --- Admin API (401 on failure) ---
	adminAPI := e.Group("/api/admin", middleware.AdminAPI(codec))
	registerCatalogRoutes(adminAPI, catalogHandler, domain.KindMindfulness, "/mindfulness-services")
	registerCatalogRoutes(adminAPI, catalogHandler, domain.KindCounselling, "/counselling-services")
	registerCatalogRoutes(adminAPI, catalogHandler, domain.KindBeyondWords, "/beyond-words-services")
	registerCatalogRoutes(adminAPI, catalogHandler, domain.KindCorporate, "/corporate-services")
	adminAPI.GET("/testimonials", testimonialHandler.AdminList)
	adminAPI.POST("/testimonials", testimonialHandler.Create)
	adminAPI.GET("/testimonials/:id", testimonialHandler.Get)
	adminAPI.PUT("/testimonials/:id", testimonialHandler.Update)
	adminAPI.DELETE("/testimonials/:id", testimonialHandler.Delete)
	adminAPI.GET("/service-counts", catalogHandler.Counts)

	// The subscriber listing exposes visitor emails, so it sits behind the
	// same guard as the rest of the admin API.
	e.GET("/api/newsletter", newsletterHandler.List, middleware.AdminAPI(codec))

	// --- Public pages ---
	e.GET("/", pages.Home)
	e.GET("/services", pages.Services)
	e.GET("/corporate-services", pages.Corporate)
	e.GET("/about", pages.About)
	e.GET("/contact", pages.Contact)
	e.GET("/privacy", pages.Legal("Privacy Policy", "How we collect, use and protect your personal information."))
	e.GET("/terms", pages.Legal("Terms of Service", "The terms that govern your use of this site and our services."))
	e.GET("/disclaimer", pages.Legal("Disclaimer", "Coaching and counselling content on this site is not a substitute for professional medical advice."))

	// --- Admin pages (redirect to login on failure) ---
	adminPages := e.Group("/admin", middleware.AdminPages(codec, loginPagePath))
	adminPages.GET("", pages.AdminRoot)
	adminPages.GET("/login", pages.AdminLogin)
	adminPages.GET("/dashboard", pages.AdminDashboard)
	adminPages.GET("/mindfulness-services", pages.AdminSection("Mindfulness Services"))
	adminPages.GET("/counselling-services", pages.AdminSection("Counselling Services"))
	adminPages.GET("/beyond-words-services", pages.AdminSection("Beyond Words Services"))
	adminPages.GET("/corporate-services", pages.AdminSection("Corporate Services"))
	adminPages.GET("/testimonials", pages.AdminSection("Testimonials"))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

func registerCatalogRoutes(g *echo.Group, h *handler.CatalogHandler, kind domain.ServiceKind, prefix string) {
	g.GET(prefix, h.AdminList(kind))
	g.POST(prefix, h.Create(kind))
	g.GET(prefix+"/:id", h.Get(kind))
	g.PUT(prefix+"/:id", h.Update(kind))
	g.DELETE(prefix+"/:id", h.Delete(kind))
}
