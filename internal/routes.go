package internal

import (
	"net/http"

	"moodd/internal/controllers"
	"moodd/internal/providers"
	"moodd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, chatController *controllers.ChatController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/moods", http.HandlerFunc(apiController.GetMoods))
	routers.Post("/mood/add", http.HandlerFunc(apiController.AddMood))
	routers.Put("/mood/update", http.HandlerFunc(apiController.UpdateMood))
	routers.Delete("/mood/delete", http.HandlerFunc(apiController.DeleteMood))
	routers.Post("/clear", http.HandlerFunc(apiController.ClearAll))

	routers.Get("/settings", http.HandlerFunc(apiController.GetSettings))
	routers.Post("/settings/apikey", http.HandlerFunc(apiController.UpdateAPIKey))
	routers.Post("/settings/color", http.HandlerFunc(apiController.UpdatePrimaryColor))

	routers.Get("/analytics/distribution", http.HandlerFunc(apiController.GetDistribution))
	routers.Get("/analytics/trend", http.HandlerFunc(apiController.GetTrend))
	routers.Get("/analytics/insights", http.HandlerFunc(apiController.GetInsights))
	routers.Get("/analytics/streak", http.HandlerFunc(apiController.GetStreak))

	routers.Post("/chat", http.HandlerFunc(chatController.Chat))
	return routers
}
