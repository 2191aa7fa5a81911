package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Reshma22M/Flexa-ChatBot/internal/catalog"
	"github.com/Reshma22M/Flexa-ChatBot/internal/handlers"
	"github.com/Reshma22M/Flexa-ChatBot/internal/ml"
	"github.com/Reshma22M/Flexa-ChatBot/internal/services"
	"github.com/Reshma22M/Flexa-ChatBot/internal/session"
)

func RegisterRoutes(app *fiber.App, store session.Store, predictor *ml.Predictor, workouts *catalog.Catalog) {
	recommender := services.NewRecommenderService(predictor, workouts)
	chatService := services.NewChatService(store, recommender)

	chatHandler := handlers.NewChatHandler(chatService)
	recommendHandler := handlers.NewRecommendHandler(recommender)

	chat := app.Group("/chat")
	chat.Get("/start", chatHandler.StartChat)
	chat.Post("/message", chatHandler.SendMessage)

	app.Post("/recommend", recommendHandler.Recommend)
}
