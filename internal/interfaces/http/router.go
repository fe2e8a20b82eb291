// Package http wires the gin router: repositories, services, handlers
// and the middleware chain.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountapp "gymkeep/internal/application/account"
	membershipapp "gymkeep/internal/application/membership"
	peopleapp "gymkeep/internal/application/people"
	scheduleapp "gymkeep/internal/application/schedule"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/infrastructure/auth"
	"gymkeep/internal/infrastructure/config"
	"gymkeep/internal/infrastructure/repository"
	"gymkeep/internal/interfaces/http/handlers"
	"gymkeep/internal/interfaces/http/middleware"
	"gymkeep/internal/shared/authorization"
	"gymkeep/internal/shared/logger"
)

// NewRouter builds the full HTTP surface on top of the given database
// handle.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *gin.Engine {
	RegisterValidators()

	identityRepo := repository.NewIdentityRepository(db, log)
	personRepo := repository.NewPersonRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	slotRepo := repository.NewClassSlotRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)
	accountStore := repository.NewAccountStore(db, log)

	hasher := auth.NewArgon2PasswordHasher(
		cfg.Auth.Password.Argon2Time,
		cfg.Auth.Password.Argon2Memory,
		cfg.Auth.Password.Argon2Threads,
	)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RememberExpDays,
	)

	accountService := accountapp.NewService(identityRepo, personRepo, accountStore, hasher, jwtService, log)
	peopleService := peopleapp.NewService(personRepo, slotRepo, log)
	membershipService := membershipapp.NewService(planRepo, subscriptionRepo, personRepo, log)
	scheduleService := scheduleapp.NewService(slotRepo, enrollmentRepo, personRepo, membershipService, log)

	authHandler := handlers.NewAuthHandler(accountService, membershipService, cfg.Auth.Cookie, log)
	planHandler := handlers.NewPlanHandler(membershipService, log)
	clientHandler := handlers.NewClientHandler(peopleService, membershipService, log)
	staffHandler := handlers.NewStaffHandler(accountService, peopleService, log)
	classHandler := handlers.NewClassHandler(scheduleService, log)
	healthHandler := handlers.NewHealthHandler(db)

	authMW := middleware.NewAuthMiddleware(jwtService, personRepo, log)

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	authed := api.Group("", authMW.RequireAuth())
	{
		authed.GET("/profile", authHandler.Profile)

		authed.GET("/trainers", staffHandler.List(person.KindTrainer))
		authed.GET("/trainers/:id", staffHandler.Get(person.KindTrainer))

		authed.GET("/classes", classHandler.List)
		authed.GET("/classes/:id", classHandler.Get)
		authed.POST("/classes/:id/enroll", classHandler.Enroll)
		authed.POST("/classes/:id/unenroll", classHandler.Unenroll)
	}

	employee := api.Group("", authMW.RequireAuth(), authMW.RequireRole(authorization.RoleEmployee))
	{
		employee.GET("/plans", planHandler.List)
		employee.GET("/plans/:id", planHandler.Get)

		employee.GET("/clients", clientHandler.List)
		employee.GET("/clients/:id", clientHandler.Get)
		employee.PUT("/clients/:id", clientHandler.Update)
		employee.POST("/clients/:id/deactivate", clientHandler.Deactivate)
		employee.POST("/clients/:id/subscriptions", clientHandler.AssignSubscription)
		employee.GET("/clients/:id/subscriptions", clientHandler.ListSubscriptions)

		employee.POST("/classes", classHandler.Create)
		employee.PUT("/classes/:id", classHandler.Update)
		employee.DELETE("/classes/:id", classHandler.Delete)
	}

	owner := api.Group("", authMW.RequireAuth(), authMW.RequireRole(authorization.RoleOwner))
	{
		owner.POST("/plans", planHandler.Create)
		owner.PUT("/plans/:id", planHandler.Update)
		owner.POST("/plans/:id/deactivate", planHandler.Deactivate)

		owner.POST("/trainers", staffHandler.Provision(person.KindTrainer))
		owner.PUT("/trainers/:id", staffHandler.Update(person.KindTrainer))
		owner.POST("/trainers/:id/deactivate", staffHandler.Deactivate(person.KindTrainer))

		owner.GET("/employees", staffHandler.List(person.KindEmployee))
		owner.GET("/employees/:id", staffHandler.Get(person.KindEmployee))
		owner.POST("/employees", staffHandler.Provision(person.KindEmployee))
		owner.PUT("/employees/:id", staffHandler.Update(person.KindEmployee))
		owner.POST("/employees/:id/deactivate", staffHandler.Deactivate(person.KindEmployee))
	}

	return router
}
