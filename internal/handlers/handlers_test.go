package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salonhub/booking-api/internal/config"
	dbpkg "github.com/salonhub/booking-api/internal/db"
	"github.com/salonhub/booking-api/internal/routes"
)

/* ==================== TEST SETUP ==================== */

func testDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	// sqlite não aplica FKs (e seus cascades) sem o pragma
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db := testDB(t)
	cfg := &config.Config{ServerPort: "0", BcryptCost: 4}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
