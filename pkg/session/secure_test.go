package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resell-dashboard/pkg/config"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := NewStore(config.SessionConfig{Secret: "0123456789abcdef", MaxAge: 3600, Store: "cookie"}, config.RedisConfig{}, false)
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.Use(Middleware("test_session", store))
	r.POST("/save", func(c *gin.Context) {
		if err := AddFlash(c, FlashSuccess, "Item added"); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.Status(http.StatusSeeOther)
	})
	r.GET("/show", func(c *gin.Context) {
		flashes, err := Flashes(c)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		if len(flashes) != 1 || flashes[0].Message != "Item added" || flashes[0].Category != FlashSuccess {
			c.String(http.StatusInternalServerError, "unexpected flashes %v", flashes)
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/save", nil))
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("show: %d %s", w.Code, w.Body.String())
	}
}

func TestNewStoreGeneratesKey(t *testing.T) {
	if _, err := NewStore(config.SessionConfig{Store: "cookie"}, config.RedisConfig{}, false); err != nil {
		t.Fatal(err)
	}
}

func TestAddFlashReportsSaveFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := NewStore(config.SessionConfig{Secret: "0123456789abcdef", MaxAge: 3600, Store: "cookie"}, config.RedisConfig{}, false)
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.Use(Middleware("test_session", store))
	r.POST("/save", func(c *gin.Context) {
		// cookie sessions are capped at 4096 encoded bytes
		if err := AddFlash(c, FlashInfo, strings.Repeat("x", 8192)); err == nil {
			c.String(http.StatusInternalServerError, "expected a save error")
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/save", nil))
	if w.Code != http.StatusOK {
		t.Errorf("save: %d %s", w.Code, w.Body.String())
	}
}
