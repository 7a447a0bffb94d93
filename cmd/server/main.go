package main

import (
	"errors"
	"log"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/domain/fiber/handler"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/taxonomy"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 0))

	// The taxonomy is loaded once at startup and shared read-only by
	// every request.
	tax, err := taxonomy.Load(config.LoadTaxonomyConfig().Path)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded taxonomy with %d roles", len(tax.Roles()))

	uc := usecase.NewAnalysisUsecase(
		tax,
		service.NewSkillDetector(),
		service.NewSimilarityScorer(),
		service.NewFormattingChecker(),
		service.NewSectionParser(),
		service.NewImpactAnalyzer(),
	)
	handler.NewAnalyzeHandler(uc).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
