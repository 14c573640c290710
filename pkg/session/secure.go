package session

import (
	"crypto/rand"
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisstore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"resell-dashboard/pkg/config"
)

const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
	FlashInfo    = "info"

	authenticatedKey = "authenticated"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// NewStore builds the cookie or redis backed session store.
func NewStore(cfg config.SessionConfig, redisCfg config.RedisConfig, secure bool) (sessions.Store, error) {
	key := []byte(cfg.Secret)
	if len(key) == 0 {
		// random key; sessions do not survive a restart
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
	}

	var store sessions.Store
	switch cfg.Store {
	case "redis":
		s, err := redisstore.NewStore(10, "tcp", redisCfg.Addr, redisCfg.Username, redisCfg.Password, key)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store = s
	default:
		store = cookie.NewStore(key)
	}

	store.Options(sessions.Options{
		MaxAge:   cfg.MaxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return store, nil
}

// Middleware attaches the session to every request.
func Middleware(name string, store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(name, store)
}

// AddFlash queues a message for the next page.
func AddFlash(c *gin.Context, category, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Category: category, Message: message})
	if err := s.Save(); err != nil {
		return fmt.Errorf("save flash: %w", err)
	}
	return nil
}

// Flashes drains the queued messages. The drained messages are returned even
// when the session could not be saved.
func Flashes(c *gin.Context) ([]Flash, error) {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	if err := s.Save(); err != nil {
		return out, fmt.Errorf("drain flashes: %w", err)
	}
	return out, nil
}

// SetAuthenticated marks the session as logged in or out.
func SetAuthenticated(c *gin.Context, ok bool) error {
	s := sessions.Default(c)
	if ok {
		s.Set(authenticatedKey, true)
	} else {
		s.Clear()
	}
	return s.Save()
}

// IsAuthenticated reports whether the session has logged in.
func IsAuthenticated(c *gin.Context) bool {
	v, _ := sessions.Default(c).Get(authenticatedKey).(bool)
	return v
}
