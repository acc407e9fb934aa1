package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

const (
	SessionCookie = "salon_session"

	ContextSessionID = "sessionID"
	ContextFormState = "formState"
	contextSaver     = "sessionSaver"
)

type SessionOptions struct {
	Codec  *session.Codec
	Store  session.Store
	TTL    time.Duration
	Secure bool
}

type saver struct {
	opts  SessionOptions
	id    string
	saved bool
}

// SessionMiddleware resolves the visitor's form state from the session
// cookie, starting a fresh session when the cookie is missing, invalid or
// expired. Handlers persist changes with SaveSession before responding;
// anything left unsaved is written after the handler returns.
func SessionMiddleware(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := zerolog.Ctx(ctx)

		id := ""
		if raw, err := c.Cookie(SessionCookie); err == nil {
			if decoded, err := opts.Codec.Decode(raw); err == nil {
				id = decoded
			}
		}

		var st *domain.FormState
		if id != "" {
			loaded, err := opts.Store.Load(ctx, id)
			switch {
			case err == nil:
				st = loaded
			case !errors.Is(err, session.ErrNotFound):
				log.Error().Err(err).Msg("load session")
			}
		}
		if st == nil {
			id = session.NewID()
			st = domain.NewFormState()
		}

		token, err := opts.Codec.Encode(id, opts.TTL)
		if err != nil {
			log.Error().Err(err).Msg("sign session cookie")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)

		c.Request = c.Request.WithContext(session.WithID(ctx, id))
		s := &saver{opts: opts, id: id}
		c.Set(ContextSessionID, id)
		c.Set(ContextFormState, st)
		c.Set(contextSaver, s)

		c.Next()

		if !s.saved {
			_ = SaveSession(c)
		}
	}
}

// FormState returns the state resolved by SessionMiddleware.
func FormState(c *gin.Context) (*domain.FormState, bool) {
	v, ok := c.Get(ContextFormState)
	if !ok {
		return nil, false
	}
	st, ok := v.(*domain.FormState)
	return st, ok
}

// SaveSession writes the current form state to the store.
func SaveSession(c *gin.Context) error {
	v, ok := c.Get(contextSaver)
	if !ok {
		return errors.New("session middleware not installed")
	}
	s := v.(*saver)
	st, _ := FormState(c)

	s.saved = true
	if err := s.opts.Store.Save(c.Request.Context(), s.id, st, s.opts.TTL); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("save session")
		return err
	}
	return nil
}
