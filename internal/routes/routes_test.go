package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/admin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
	"github.com/stephen-1-2/Anonymous-Wall/internal/handlers"
	"github.com/stephen-1-2/Anonymous-Wall/internal/middleware"
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"github.com/stephen-1-2/Anonymous-Wall/internal/routes"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the real middleware chain and routes against an
// in-memory SQLite DB, the closest thing to the production stack that can
// run in a unit test.
func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Message{}, &models.Like{}, &models.Comment{}, &models.BoardConfig{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Exec("DELETE FROM likes")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM board_config")

	gate := admin.NewGate(db)
	if err := gate.Seed("admin123"); err != nil {
		t.Fatalf("seed gate: %v", err)
	}

	st := store.New(db)
	h := handlers.New(st, gate, &config.Config{
		MaxMediaMB:      50,
		MaxBackgroundMB: 5,
		DataDir:         t.TempDir(),
	})

	r := gin.New()
	r.Use(middleware.IdentityMiddleware())

	api := r.Group("/api")
	routes.RegisterMessageRoutes(api, h)
	routes.RegisterAdminRoutes(api, h)
	routes.RegisterBackgroundRoutes(api, h)

	return r, st
}

func postMessage(t *testing.T, r *gin.Engine, content, userAgent string) string {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("content", content)
	mw.Close()

	req := httptest.NewRequest("POST", "/api/messages", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", userAgent)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Message `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func TestDeleteMessage_AdminGated(t *testing.T) {
	r, _ := setupRouter(t)
	id := postMessage(t, r, "to be moderated", "browser-a")

	// No secret: forbidden, message survives
	req := httptest.NewRequest("DELETE", "/api/messages/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Wrong secret: still forbidden
	req = httptest.NewRequest("DELETE", "/api/messages/"+id, nil)
	req.Header.Set(middleware.AdminSecretHeader, "nope")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Correct secret: deleted
	req = httptest.NewRequest("DELETE", "/api/messages/"+id, nil)
	req.Header.Set(middleware.AdminSecretHeader, "admin123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Absent afterwards: NotFound, never silent success
	req = httptest.NewRequest("DELETE", "/api/messages/"+id, nil)
	req.Header.Set(middleware.AdminSecretHeader, "admin123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// And its media path 404s
	req = httptest.NewRequest("GET", "/api/media/"+id, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIdentityScopesLikesAcrossRequests(t *testing.T) {
	r, _ := setupRouter(t)
	id := postMessage(t, r, "hello", "browser-a")

	toggle := func(userAgent string) (bool, int64) {
		req := httptest.NewRequest("POST", "/api/messages/"+id+"/like", nil)
		req.Header.Set("User-Agent", userAgent)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			IsLiked   bool  `json:"isLiked"`
			LikeCount int64 `json:"likeCount"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.IsLiked, resp.LikeCount
	}

	liked, count := toggle("browser-a")
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)

	// Different signature → different identity → independent like
	liked, count = toggle("browser-b")
	assert.True(t, liked)
	assert.EqualValues(t, 2, count)

	// Same caller toggles off: identity was stable across requests
	liked, count = toggle("browser-a")
	assert.False(t, liked)
	assert.EqualValues(t, 1, count)
}

func TestAdminVerifyEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	verify := func(pwd string) bool {
		payload, _ := json.Marshal(map[string]string{"pwd": pwd})
		req := httptest.NewRequest("POST", "/api/admin/verify", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Success
	}

	assert.True(t, verify("admin123"))
	assert.False(t, verify("ADMIN123"))
	assert.False(t, verify(""))
}

func TestBackgroundPicker(t *testing.T) {
	r, _ := setupRouter(t)

	// Select by URL
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("bgUrl", "/assets/backgrounds/preset.png")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/backgrounds", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Listed back as current
	req = httptest.NewRequest("GET", "/api/backgrounds", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Current string   `json:"current"`
			List    []string `json:"list"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/assets/backgrounds/preset.png", resp.Data.Current)
}
