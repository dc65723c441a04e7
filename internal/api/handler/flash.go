package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const flashCookie = "flash_id"

// FlashStore keeps page messages that must survive a redirect.
type FlashStore interface {
	Push(ctx context.Context, id, message string) error
	Pop(ctx context.Context, id string) ([]string, error)
}

// flasher ties a FlashStore to the browser through the flash_id cookie.
// A nil store drops every message.
type flasher struct {
	store FlashStore
	log   zerolog.Logger
}

func (f flasher) push(c echo.Context, message string) {
	if f.store == nil {
		return
	}
	id := ""
	if cookie, err := c.Cookie(flashCookie); err == nil {
		id = cookie.Value
	}
	if id == "" {
		id = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     flashCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   60,
			HttpOnly: true,
		})
	}
	if err := f.store.Push(c.Request().Context(), id, message); err != nil {
		f.log.Warn().Err(err).Msg("flash message dropped")
	}
}

func (f flasher) pop(c echo.Context) []string {
	if f.store == nil {
		return nil
	}
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	msgs, err := f.store.Pop(c.Request().Context(), cookie.Value)
	if err != nil {
		f.log.Warn().Err(err).Msg("flash messages unavailable")
		return nil
	}
	return msgs
}
