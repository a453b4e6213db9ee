package routes

import (
	"anchored/controllers"
	"anchored/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	// 1. CHAT family WebSocket
	api.Get("/chat/ws", websocket.New(controllers.ChatWebSocket))

	// 2. CHAT HTTP + JWT
	chat := api.Group("/chat", middleware.JWTProtected())
	chat.Get("/history", controllers.ChatHistory)

	// 3. AUTH
	auth := api.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login",    controllers.Login)
	auth.Get("/activate/:link", controllers.Activate)
	auth.Post("/refresh",  controllers.Refresh)
	auth.Post("/logout",   controllers.Logout)

	// 4. FAMILY
	family := api.Group("/family", middleware.JWTProtected())
	family.Post("/create", controllers.CreateFamily)
	family.Post("/invite", controllers.InviteMember)
	api.Get("/family/accept/:token", controllers.AcceptInvitation)
	family.Get("/details", controllers.GetFamilyDetails)

	// 5. CALENDAR
	calendar := api.Group("/calendar", middleware.JWTProtected())
	calendar.Post("/events",              controllers.CreateEvent)
	calendar.Get("/events",               controllers.GetEventsForMonth)
	calendar.Get("/events/all",           controllers.GetAllEvents)
	calendar.Post("/events/:id/complete", controllers.CompleteEvent)
	calendar.Put("/events/:id",           controllers.UpdateEvent)
	calendar.Get("/list",                 controllers.GetCalendarsList)
	calendar.Post("/create_extra",        controllers.CreateExtraCalendar)
	calendar.Get("/:calendar_id/events",  controllers.GetEventsForCalendar)

	// 6. CALENDAR IMPORT
	// Preview parsing is stateless; only the bulk save needs auth.
	api.Post("/calendar/import/file", controllers.ImportCalendarFile)
	api.Post("/calendar/import/url",  controllers.ImportCalendarURL)
	calendar.Post("/events/bulk",     controllers.BulkCreateEvents)

	// 7. CHORES
	chores := api.Group("/chores", middleware.JWTProtected())
	chores.Post("/",                controllers.CreateChore)
	chores.Get("/",                 controllers.GetChores)
	chores.Put("/:id",              controllers.UpdateChore)
	chores.Post("/:id/complete",    controllers.CompleteChore)
	chores.Delete("/:id",           controllers.DeleteChore)
	chores.Get("/:id/occurrences",  controllers.GetChoreOccurrences)

	// 8. PANTRY + GROCERY + RECIPES
	pantry := api.Group("/pantry", middleware.JWTProtected())
	pantry.Get("/",        controllers.GetPantryItems)
	pantry.Post("/",       controllers.CreatePantryItem)
	pantry.Put("/:id",     controllers.UpdatePantryItem)
	pantry.Delete("/:id",  controllers.DeletePantryItem)

	grocery := api.Group("/grocery", middleware.JWTProtected())
	grocery.Get("/",             controllers.GetGroceryList)
	grocery.Post("/",            controllers.CreateGroceryItem)
	grocery.Post("/:id/toggle",  controllers.ToggleGroceryItem)
	grocery.Delete("/:id",       controllers.DeleteGroceryItem)

	recipes := api.Group("/recipes", middleware.JWTProtected())
	recipes.Post("/",               controllers.CreateRecipe)
	recipes.Get("/",                controllers.GetRecipes)
	recipes.Get("/:id",             controllers.GetRecipe)
	recipes.Delete("/:id",          controllers.DeleteRecipe)
	recipes.Post("/:id/to-grocery", controllers.AddRecipeToGroceryList)

	// 9. DEVOTIONS
	devotions := api.Group("/devotions", middleware.JWTProtected())
	devotions.Post("/",       controllers.CreateDevotion)
	devotions.Get("/",        controllers.GetDevotions)
	devotions.Get("/today",   controllers.GetTodayDevotion)
	devotions.Delete("/:id",  controllers.DeleteDevotion)

	// 10. DOCUMENT VAULT
	vault := api.Group("/vault", middleware.JWTProtected())
	vault.Post("/documents",              controllers.UploadDocument)
	vault.Get("/documents",               controllers.GetDocuments)
	vault.Get("/documents/:id/download",  controllers.DownloadDocument)
	vault.Delete("/documents/:id",        controllers.DeleteDocument)

	// 11. BUDGET
	budget := api.Group("/budget", middleware.JWTProtected())
	budget.Post("/entries",      controllers.CreateBudgetEntry)
	budget.Get("/entries",       controllers.GetBudgetEntries)
	budget.Get("/summary",       controllers.GetBudgetSummary)
	budget.Delete("/entries/:id", controllers.DeleteBudgetEntry)

	// 12. SUBSCRIPTION
	sub := api.Group("/subscription")
	sub.Post("/webhook", controllers.PaymentWebhook)
	subAuth := sub.Group("", middleware.JWTProtected())
	subAuth.Post("/buy",  controllers.BuySubscription)
	subAuth.Get("/check", controllers.CheckSubscription)

	// 13. ADMIN
	admin := api.Group("/admin", middleware.JWTProtected())
	admin.Get("/payments", controllers.GetPaymentHistory)
}
