package routes

import (
	"Cookbook-Backend/internal/api/handlers"
	"Cookbook-Backend/internal/middleware"
	"Cookbook-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	RecipeHandler  handlers.RecipeHandler
	CommentHandler handlers.CommentHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipe()
	c.Comment()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.UserHandler.GetUsers)
		user.Get("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.UserHandler.GetUser)
		user.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipe() {
	recipes := c.App.Group("/api/v1/recipes")

	// Public read surface
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/all", c.RecipeHandler.GetAllRecipes)

	// Authenticated writes; the literal segments go before "/:id" so Fiber
	// does not swallow them as recipe IDs.
	recipes.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetUserRecipes)
	recipes.Get("/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.RecipeHandler.GetAdminRecipes)
	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Comment() {
	comments := c.App.Group("/api/v1/comments")

	comments.Get("/version/:version_id", c.CommentHandler.GetVersionComments)
	comments.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CommentHandler.CreateComment)
	comments.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CommentHandler.UpdateComment)
	comments.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CommentHandler.DeleteComment)
}

func (c *Config) Catalog() {
	api := c.App.Group("/api/v1")
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.AdminOnly()

	api.Get("/units", c.CatalogHandler.GetUnits)

	utensils := api.Group("/utensils")
	utensils.Get("", c.CatalogHandler.GetUtensils)
	utensils.Post("", auth, admin, c.CatalogHandler.CreateUtensil)
	utensils.Put("/:id", auth, admin, c.CatalogHandler.UpdateUtensil)
	utensils.Delete("/:id", auth, admin, c.CatalogHandler.DeleteUtensil)

	recipeCategories := api.Group("/recipe-categories")
	recipeCategories.Get("", c.CatalogHandler.GetRecipeCategories)
	recipeCategories.Post("", auth, admin, c.CatalogHandler.CreateRecipeCategory)
	recipeCategories.Put("/:id", auth, admin, c.CatalogHandler.UpdateRecipeCategory)
	recipeCategories.Delete("/:id", auth, admin, c.CatalogHandler.DeleteRecipeCategory)

	ingredientCategories := api.Group("/ingredient-categories")
	ingredientCategories.Get("", c.CatalogHandler.GetIngredientCategories)
	ingredientCategories.Post("", auth, admin, c.CatalogHandler.CreateIngredientCategory)
	ingredientCategories.Put("/:id", auth, admin, c.CatalogHandler.UpdateIngredientCategory)
	ingredientCategories.Delete("/:id", auth, admin, c.CatalogHandler.DeleteIngredientCategory)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
