package main

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/auth"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/config"
	apphttp "github.com/Airplanefox77/Sakura-Money-Tracker/internal/http"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/router"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/store"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	st, err := store.New(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening record store")
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":  true,
			"now": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r := &router.Router{
		AuthHandler: &apphttp.AuthHandler{Store: st, Issuer: issuer, Log: log},
		SyncHandler: &apphttp.SyncHandler{Store: st, Log: log},
		AuthMW:      auth.Middleware(issuer, st),
		AuthLimiter: router.RateLimitAuth(cfg.AuthRateMax, cfg.AuthRateWindow),
	}
	r.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Str("data_dir", cfg.DataDir).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// errorHandler maps *fiber.Error to its status and message; anything else
// is logged in full and returned as a generic 500 so internals never leak.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		}

		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
