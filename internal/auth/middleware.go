package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/domain"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/store"
)

const accountLocal = "account"

// loadTimeout bounds the store read during authentication; on timeout the
// request fails closed with 401.
const loadTimeout = 2 * time.Second

// Middleware gates the sync routes. It verifies the bearer credential and
// reloads the account from the store — a token for a deleted account is
// unauthorized, and handlers never act on stale embedded state.
func Middleware(issuer *TokenIssuer, st *store.FileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		claims, err := issuer.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		ctx, cancel := context.WithTimeout(userContext(c), loadTimeout)
		defer cancel()

		acc, err := st.Load(ctx, claims.AccountID)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrNotFound),
			errors.Is(err, context.DeadlineExceeded),
			errors.Is(err, context.Canceled):
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		default:
			return err
		}

		c.Locals(accountLocal, acc)
		return c.Next()
	}
}

// AccountFromCtx returns the account attached by Middleware.
func AccountFromCtx(c *fiber.Ctx) (*domain.Account, bool) {
	acc, ok := c.Locals(accountLocal).(*domain.Account)
	return acc, ok && acc != nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
