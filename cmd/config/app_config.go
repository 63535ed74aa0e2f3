package config

import (
	"os"
	"time"

	"recipebook/internal/api/handlers"
	"recipebook/internal/api/routes"
	"recipebook/internal/database"
	"recipebook/internal/middleware"
	"recipebook/internal/utils"
	"recipebook/pkg/account"
	"recipebook/pkg/rating"
	"recipebook/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Transaction manager
	txManager := database.NewTransactionManager(db)

	// Repository
	accountRepository := account.NewAccountRepository(db, txManager)
	recipeRepository := recipe.NewRecipeRepository(db, txManager)
	ratingRepository := rating.NewRatingRepository(db, txManager)

	// Service
	session := account.NewSession()
	accountService := account.NewAccountService(accountRepository, session)
	recipeService := recipe.NewRecipeService(recipeRepository)
	ratingService := rating.NewRatingService(ratingRepository)

	// Handler
	accountHandler := handlers.NewAccountHandler(accountService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AccountHandler: accountHandler,
		RecipeHandler:  recipeHandler,
		RatingHandler:  ratingHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
