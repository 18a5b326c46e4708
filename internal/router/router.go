package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/Airplanefox77/Sakura-Money-Tracker/internal/http"
)

type Router struct {
	AuthHandler *handlers.AuthHandler
	SyncHandler *handlers.SyncHandler
	AuthMW      fiber.Handler
	AuthLimiter fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthLimiter != nil {
		app.Post("/register", r.AuthLimiter, r.AuthHandler.Register)
		app.Post("/login", r.AuthLimiter, r.AuthHandler.Login)
	} else {
		app.Post("/register", r.AuthHandler.Register)
		app.Post("/login", r.AuthHandler.Login)
	}

	app.Get("/sync/download", r.AuthMW, r.SyncHandler.Download)
	app.Post("/sync/upload", r.AuthMW, r.SyncHandler.Upload)
	app.Post("/sync/merge", r.AuthMW, r.SyncHandler.Merge)
	app.Get("/sync/summary", r.AuthMW, r.SyncHandler.Summary)
	app.Post("/account/delete", r.AuthMW, r.SyncHandler.DeleteAccount)
}
