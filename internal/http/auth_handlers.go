package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/auth"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/domain"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/store"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/transactions"
)

type AuthHandler struct {
	Store  *store.FileStore
	Issuer *auth.TokenIssuer
	Log    zerolog.Logger
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	email := domain.NormalizeEmail(body.Email)
	if email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	ctx := userContext(c)
	id := domain.AccountID(email)

	_, err := h.Store.Load(ctx, id)
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "account already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	acc := &domain.Account{
		ID:             id,
		Email:          email,
		CredentialHash: hash,
		CreatedAt:      now,
		UpdatedAt:      now,
		Transactions:   []transactions.Transaction{},
		Meta:           map[string]any{},
	}
	if err := h.Store.Save(ctx, acc); err != nil {
		return err
	}

	h.Log.Info().Str("account_id", id).Msg("account registered")
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	email := domain.NormalizeEmail(body.Email)
	acc, err := h.Store.Load(userContext(c), domain.AccountID(email))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	// Absent account and wrong password fail identically so login never
	// reveals whether an email is registered.
	if err != nil || !auth.CheckPassword(acc.CredentialHash, body.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	token, err := h.Issuer.Issue(acc)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
