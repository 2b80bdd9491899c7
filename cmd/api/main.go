package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/DevHubCode/DevHub/internal/cache"
	"github.com/DevHubCode/DevHub/internal/config"
	"github.com/DevHubCode/DevHub/internal/db"
	"github.com/DevHubCode/DevHub/internal/handlers"
	"github.com/DevHubCode/DevHub/internal/middleware"
	"github.com/DevHubCode/DevHub/internal/models"
	"github.com/DevHubCode/DevHub/internal/services/avaliacao"
	"github.com/DevHubCode/DevHub/internal/services/contratante"
	"github.com/DevHubCode/DevHub/internal/services/freelancer"
	"github.com/DevHubCode/DevHub/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.Freelancer{},
		&models.Contratante{},
		&models.Especialidade{},
		&models.Avaliacao{},
		&models.UploadRecord{},
	); err != nil {
		log.Fatal(err)
	}

	rdb := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis não conectado:", err)
	}

	store, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		log.Fatal(err)
	}
	uploader := storage.NewUploader(store)

	ratingCache := cache.NewRedisRatingCache(rdb, 5*time.Minute)
	avaliacaoSvc := avaliacao.NewService(gdb, ratingCache)
	freelancerSvc := freelancer.NewService(gdb, uploader, avaliacaoSvc)
	contratanteSvc := contratante.NewService(gdb, uploader)

	authH := &handlers.AuthHandler{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	freelancerH := handlers.NewFreelancerHandler(freelancerSvc, avaliacaoSvc)
	contratanteH := handlers.NewContratanteHandler(contratanteSvc)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // fotos de perfil
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://127.0.0.1:3000, http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	// public
	app.Post("/login", middleware.RateLimitPerIP(rate.Every(time.Second), 5), authH.Login)
	app.Post("/logout", authH.Logout)

	app.Post("/freelancers", freelancerH.Create)
	app.Get("/freelancers", freelancerH.List)
	app.Get("/freelancers/search", freelancerH.Search)
	app.Post("/freelancers/compare", freelancerH.Compare)
	app.Get("/freelancers/:id", freelancerH.GetByID)
	app.Get("/freelancers/:id/foto", freelancerH.GetFoto)

	app.Post("/contratantes", contratanteH.Create)
	app.Get("/contratantes", contratanteH.List)
	app.Get("/contratantes/:id", contratanteH.GetByID)
	app.Get("/contratantes/:id/foto", contratanteH.GetFoto)

	// protected (JWT via cookie)
	protected := app.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Put("/freelancers/:id", middleware.RequireRoles("freelancer"), freelancerH.Update)
	protected.Delete("/freelancers/:id", middleware.RequireRoles("freelancer"), freelancerH.Delete)
	protected.Patch("/freelancers/:id/ativar", middleware.RequireRoles("freelancer"), freelancerH.Activate)
	protected.Post("/freelancers/:id/especialidades", middleware.RequireRoles("freelancer"), freelancerH.CreateEspecialidades)
	protected.Put("/freelancers/:id/foto", middleware.RequireRoles("freelancer"), freelancerH.UploadFoto)
	protected.Post("/freelancers/:id/avaliacoes", middleware.RequireRoles("contratante"), freelancerH.CreateAvaliacao)

	protected.Put("/contratantes/:id", middleware.RequireRoles("contratante"), contratanteH.Update)
	protected.Delete("/contratantes/:id", middleware.RequireRoles("contratante"), contratanteH.Delete)
	protected.Patch("/contratantes/:id/ativar", middleware.RequireRoles("contratante"), contratanteH.Activate)
	protected.Put("/contratantes/:id/foto", middleware.RequireRoles("contratante"), contratanteH.UploadFoto)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
