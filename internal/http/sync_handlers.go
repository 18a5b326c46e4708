package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/auth"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/store"
	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/transactions"
)

// SyncHandler implements the per-account sync operations. All routes sit
// behind auth.Middleware, which attaches the freshly loaded account.
type SyncHandler struct {
	Store *store.FileStore
	Log   zerolog.Logger
}

type syncRequest struct {
	Transactions json.RawMessage `json:"transactions"`
}

type deleteAccountRequest struct {
	Confirm bool `json:"confirm"`
}

// Download returns the stored list unchanged. Registration always writes an
// empty list, so there is nothing to default here.
func (h *SyncHandler) Download(c *fiber.Ctx) error {
	acc, ok := auth.AccountFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"transactions": acc.Transactions})
}

// Upload replaces the stored list wholesale with the sanitized incoming one.
func (h *SyncHandler) Upload(c *fiber.Ctx) error {
	acc, ok := auth.AccountFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	incoming, err := decodeList(c)
	if err != nil {
		return err
	}

	acc.Transactions = transactions.Sanitize(incoming)
	acc.Touch()
	if err := h.Store.Save(userContext(c), acc); err != nil {
		return err
	}

	h.Log.Info().Str("account_id", acc.ID).Int("count", len(acc.Transactions)).Msg("upload replaced transactions")
	return c.JSON(fiber.Map{"success": true})
}

// Merge reconciles the stored list with the incoming one by id, persists
// the result, and returns it so the client can reconcile local state
// without a second round trip.
func (h *SyncHandler) Merge(c *fiber.Ctx) error {
	acc, ok := auth.AccountFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	incoming, err := decodeList(c)
	if err != nil {
		return err
	}

	acc.Transactions = transactions.Merge(acc.Transactions, incoming)
	acc.Touch()
	if err := h.Store.Save(userContext(c), acc); err != nil {
		return err
	}

	h.Log.Info().Str("account_id", acc.ID).Int("count", len(acc.Transactions)).Msg("merge updated transactions")
	return c.JSON(fiber.Map{
		"success":      true,
		"transactions": acc.Transactions,
	})
}

// Summary totals the stored list: income, expense and balance.
func (h *SyncHandler) Summary(c *fiber.Ctx) error {
	acc, ok := auth.AccountFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(transactions.Summarize(acc.Transactions))
}

// DeleteAccount irreversibly removes the record. The confirm flag is
// required so a stray client call cannot wipe an account.
func (h *SyncHandler) DeleteAccount(c *fiber.Ctx) error {
	acc, ok := auth.AccountFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body deleteAccountRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if !body.Confirm {
		return fiber.NewError(fiber.StatusBadRequest, "confirmation required")
	}

	if err := h.Store.Delete(userContext(c), acc.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "account not found")
		}
		return err
	}

	h.Log.Info().Str("account_id", acc.ID).Msg("account deleted")
	return c.JSON(fiber.Map{"success": true})
}

// decodeList parses the request body and requires the transactions field
// to be a JSON array; anything else is InvalidInput. Element shape is not
// validated here — Sanitize copes with arbitrary objects.
func decodeList(c *fiber.Ctx) ([]any, error) {
	var body syncRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	var list []any
	if err := json.Unmarshal(body.Transactions, &list); err != nil || list == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "transactions must be an array")
	}
	return list, nil
}
