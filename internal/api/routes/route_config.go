package routes

import (
	"recipebook/internal/api/handlers"
	"recipebook/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	AccountHandler handlers.AccountHandler
	RecipeHandler  handlers.RecipeHandler
	RatingHandler  handlers.RatingHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.Accounts()
	c.Recipes()
	c.Ingredients()
	c.GuestRoute()
}

func (c *Config) Accounts() {
	accounts := c.App.Group("/api/v1/accounts")
	{
		accounts.Post("", c.AccountHandler.CreateUser)
		accounts.Get("", c.AccountHandler.GetUsers)
		accounts.Put("/current", c.AccountHandler.SetCurrentUser)
		accounts.Get("/current", c.AccountHandler.GetCurrentUser)
		accounts.Delete("/:id", c.AccountHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/favorites", c.RecipeHandler.GetFavorites)
		recipes.Get("/favorited", c.RecipeHandler.GetFavoritedRecipes)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/favorite", c.RecipeHandler.FavoriteRecipe)
		recipes.Delete("/:id/favorite", c.RecipeHandler.UnfavoriteRecipe)
		recipes.Post("/:id/ratings", c.RatingHandler.AddRating)
		recipes.Get("/:id/ratings", c.RatingHandler.GetRecipeRating)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Post("", c.RecipeHandler.CreateIngredient)
		ingredients.Get("", c.RecipeHandler.GetIngredients)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
