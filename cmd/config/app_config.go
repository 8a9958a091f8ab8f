package config

import (
	"Cookbook-Backend/internal/api/handlers"
	"Cookbook-Backend/internal/api/routes"
	"Cookbook-Backend/internal/middleware"
	"Cookbook-Backend/internal/utils"
	"Cookbook-Backend/internal/utils/storage"
	"Cookbook-Backend/pkg/catalog"
	"Cookbook-Backend/pkg/comment"
	"Cookbook-Backend/pkg/jwt"
	"Cookbook-Backend/pkg/recipe"
	"Cookbook-Backend/pkg/user"
	"os"
	"time"

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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	commentService := comment.NewCommentService(commentRepository)
	catalogService := catalog.NewCatalogService(catalogRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		RecipeHandler:  recipeHandler,
		CommentHandler: commentHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
