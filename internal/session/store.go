package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const stateKey = "tutor_state"

// Store keeps one State per browser session in Fiber's in-memory session
// storage. Sessions are never shared between cookies.
type Store struct {
	sessions *fibersession.Store
}

func NewStore(expiration time.Duration) *Store {
	return &Store{
		sessions: fibersession.New(fibersession.Config{
			Expiration:     expiration,
			KeyGenerator:   uuid.NewString,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		}),
	}
}

// Load returns the state bound to the request, or the zero State for a new
// session.
func (s *Store) Load(c *fiber.Ctx) (State, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return State{}, fmt.Errorf("failed to load session: %w", err)
	}
	return decodeState(sess)
}

// Update applies action to the stored state and saves the result. A failed
// action leaves the stored state untouched.
func (s *Store) Update(c *fiber.Ctx, action Action) (State, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return State{}, fmt.Errorf("failed to load session: %w", err)
	}

	current, err := decodeState(sess)
	if err != nil {
		return State{}, err
	}

	next, err := Apply(current, action)
	if err != nil {
		return current, err
	}

	if !next.LoggedIn {
		if err := sess.Destroy(); err != nil {
			return State{}, fmt.Errorf("failed to destroy session: %w", err)
		}
		return next, nil
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return State{}, fmt.Errorf("failed to encode session state: %w", err)
	}
	sess.Set(stateKey, string(raw))

	if err := sess.Save(); err != nil {
		return State{}, fmt.Errorf("failed to save session: %w", err)
	}

	return next, nil
}

func decodeState(sess *fibersession.Session) (State, error) {
	raw, ok := sess.Get(stateKey).(string)
	if !ok || raw == "" {
		return State{}, nil
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{}, fmt.Errorf("failed to decode session state: %w", err)
	}
	return state, nil
}
