package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tallerlima/internal/config"
	"tallerlima/internal/database"
	"tallerlima/internal/domain"
	"tallerlima/internal/middleware"
	"tallerlima/internal/modules/auth"
	"tallerlima/internal/modules/catalog"
	"tallerlima/internal/modules/stats"
	"tallerlima/internal/modules/users"
	jwtsvc "tallerlima/internal/pkg/jwt"
	"tallerlima/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Workshop{},
		&domain.EngineRectifier{},
		&domain.Address{},
		&domain.Contact{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	workshopRepo := repository.NewCatalogRepository[domain.Workshop, *domain.Workshop](db, repository.CatalogConfig{
		Table:    "workshops",
		OwnerKey: "workshop_id",
	})
	rectifierRepo := repository.NewCatalogRepository[domain.EngineRectifier, *domain.EngineRectifier](db, repository.CatalogConfig{
		Table:    "engine_rectifiers",
		OwnerKey: "rectifier_id",
	})

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	workshopService := catalog.NewService(workshopRepo, catalog.Workshops())
	workshopHandler := catalog.NewHandler(workshopService)

	rectifierService := catalog.NewService(rectifierRepo, catalog.Rectifiers())
	rectifierHandler := catalog.NewHandler(rectifierService)

	userService := users.NewService(userRepo)
	userHandler := users.NewHandler(userService)

	statsHandler := stats.NewHandler(workshopService, rectifierService, userRepo)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.ErrorLogger(), middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			workshopHandler.RegisterRoutes(protected)
			rectifierHandler.RegisterRoutes(protected)
			statsHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.SuperAdminOnly())
			{
				userHandler.RegisterRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
