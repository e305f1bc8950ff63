package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/salonhub/booking-api/internal/db"
	"github.com/salonhub/booking-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func protectedRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AuthMiddleware(db))
	r.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func seedToken(t *testing.T, db *gorm.DB) models.AuthToken {
	user := models.User{Username: "maria", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	token := models.AuthToken{Key: "fixed-test-token", UserID: user.ID}
	require.NoError(t, db.Create(&token).Error)
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	db := testDB(t)
	token := seedToken(t, db)
	r := protectedRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.Key)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestAuthMiddleware_TokenScheme(t *testing.T) {
	db := testDB(t)
	token := seedToken(t, db)
	r := protectedRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+token.Key)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	db := testDB(t)
	r := protectedRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	db := testDB(t)
	seedToken(t, db)
	r := protectedRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}
