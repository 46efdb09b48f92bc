package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voluntree/volunteer-api/internal/api/handler"
	"github.com/voluntree/volunteer-api/internal/api/middleware"
	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/service"
	"github.com/voluntree/volunteer-api/internal/infrastructure/config"
	mongodb "github.com/voluntree/volunteer-api/internal/infrastructure/db/mongo"
	redisdb "github.com/voluntree/volunteer-api/internal/infrastructure/db/redis"
	"github.com/voluntree/volunteer-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("voluntree"))

	// --- Repositories ---
	accounts := mongodb.NewAccountRepository(db)
	profiles := mongodb.NewVolunteerRepository(db)
	orgs := mongodb.NewOrganizationRepository(db)
	causeAreas := mongodb.NewCauseAreaRepository(db)
	skills := mongodb.NewSkillRepository(db)
	opportunities := mongodb.NewOpportunityRepository(db)
	applications := mongodb.NewApplicationRepository(db)
	reviews := mongodb.NewReviewRepository(db)
	events := mongodb.NewEventRepository(db)
	registrations := mongodb.NewEventRegistrationRepository(db)
	tx := mongodb.NewTxRunner(client)
	blacklist := redisdb.NewTokenBlacklist(rdb)

	// --- Services ---
	authService := service.NewAuthService(accounts, blacklist, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	identityService := service.NewIdentityService(accounts, profiles, orgs, tx, log)
	opportunityService := service.NewOpportunityService(opportunities, orgs, causeAreas, skills, log)
	applicationService := service.NewApplicationService(applications, opportunities, orgs, log)
	reviewService := service.NewReviewService(reviews, orgs, log)
	eventService := service.NewEventService(events, registrations, orgs, profiles, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	volunteerHandler := handler.NewVolunteerHandler(identityService)
	orgHandler := handler.NewOrganizationHandler(identityService)
	opportunityHandler := handler.NewOpportunityHandler(opportunityService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	eventHandler := handler.NewEventHandler(eventService)
	catalogHandler := handler.NewCatalogHandler(causeAreas, skills)

	authn := middleware.Auth(cfg.JWTSecret)
	volunteerOnly := middleware.RequireRole(domain.RoleVolunteer)
	organizationOnly := middleware.RequireRole(domain.RoleOrganization)
	anyRole := middleware.RequireRole(domain.RoleVolunteer, domain.RoleOrganization)

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.Refresh)
	v1.POST("/auth/logout", authHandler.Logout)

	// --- Volunteers ---
	v1.POST("/users/signup", volunteerHandler.Signup)
	v1.GET("/users/:id", volunteerHandler.Get, authn, volunteerOnly)
	v1.PUT("/users/:id", volunteerHandler.Update, authn, volunteerOnly)
	v1.DELETE("/users/:id", volunteerHandler.Delete, authn, volunteerOnly)

	// --- Organizations ---
	v1.POST("/organizations/register", orgHandler.Register)
	v1.GET("/organizations", orgHandler.List)
	v1.GET("/organizations/:id", orgHandler.Get, authn, organizationOnly)
	v1.PUT("/organizations/:id", orgHandler.Update, authn, organizationOnly)
	v1.DELETE("/organizations/:id", orgHandler.Delete, authn, organizationOnly)

	// --- Opportunities ---
	v1.GET("/opportunities", opportunityHandler.List)
	v1.GET("/organizations/:orgID/opportunities", opportunityHandler.ListForOrganization, authn, organizationOnly)
	v1.POST("/organizations/:orgID/opportunities", opportunityHandler.Create, authn, organizationOnly)
	v1.GET("/opportunities/:id", opportunityHandler.Get, authn, organizationOnly)
	v1.PUT("/opportunities/:id", opportunityHandler.Update, authn, organizationOnly)
	v1.DELETE("/opportunities/:id", opportunityHandler.Delete, authn, organizationOnly)

	// --- Applications ---
	v1.POST("/opportunities/:oppID/applications", applicationHandler.Apply, authn, volunteerOnly)
	v1.GET("/organizations/:orgID/opportunities/:oppID/applications", applicationHandler.ListForOpportunity, authn, organizationOnly)
	v1.PUT("/applications/:id", applicationHandler.UpdateStatus, authn, organizationOnly)
	v1.DELETE("/applications/:id", applicationHandler.Delete, authn, organizationOnly)

	// --- Reviews ---
	v1.GET("/organizations/:orgID/reviews", reviewHandler.ListForOrganization, authn, anyRole)
	v1.POST("/organizations/:orgID/reviews", reviewHandler.Create, authn, volunteerOnly)
	v1.PUT("/reviews/:id", reviewHandler.Update, authn, volunteerOnly)
	v1.DELETE("/reviews/:id", reviewHandler.Delete, authn, anyRole)

	// --- Events ---
	v1.GET("/events", eventHandler.List)
	v1.GET("/organizations/:orgID/events", eventHandler.ListForOrganization)
	v1.POST("/organizations/:orgID/events", eventHandler.Create, authn, organizationOnly)
	v1.PUT("/events/:id", eventHandler.Update, authn, organizationOnly)
	v1.DELETE("/events/:id", eventHandler.Delete, authn, organizationOnly)
	v1.POST("/events/:id/registrations", eventHandler.Register, authn, volunteerOnly)
	v1.GET("/events/:id/attendees", eventHandler.Attendees, authn, organizationOnly)

	// --- Catalogs ---
	v1.GET("/cause-areas", catalogHandler.ListCauseAreas)
	v1.GET("/skills", catalogHandler.ListSkills)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
