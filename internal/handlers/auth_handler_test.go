package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-api/internal/models"
)

func registerBody(username string) map[string]any {
	return map[string]any{
		"username":   username,
		"email":      "maria@example.com",
		"first_name": "Maria",
		"last_name":  "Silva",
		"password":   "abcdef",
		"password2":  "abcdef",
		"phone":      "+1-555-0199",
		"location":   "Brooklyn",
	}
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Profile  struct {
			Phone    string `json:"phone"`
			Location string `json:"location"`
		} `json:"profile"`
	} `json:"user"`
}

func TestRegister_ThenLoginAndProfile(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody("maria"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg authResponse
	decodeBody(t, w, &reg)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "maria", reg.User.Username)
	assert.Equal(t, "Brooklyn", reg.User.Profile.Location)

	// login com as mesmas credenciais reusa o token ativo
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "maria",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login authResponse
	decodeBody(t, w, &login)
	assert.Equal(t, reg.Token, login.Token)

	// token autentica o profile
	w = doJSON(t, r, http.MethodGet, "/auth/profile", reg.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"maria"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_PasswordMismatch_NothingPersisted(t *testing.T) {
	r, db := testRouter(t)

	body := registerBody("maria")
	body["password2"] = "abcdef1"

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password_mismatch")

	var users, profiles, tokens int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Profile{}).Count(&profiles)
	db.Model(&models.AuthToken{}).Count(&tokens)
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.Zero(t, tokens)
}

func TestRegister_ShortPassword(t *testing.T) {
	r, _ := testRouter(t)

	body := registerBody("maria")
	body["password"] = "abc"
	body["password2"] = "abc"

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password_too_short")
}

func TestRegister_DuplicateUsername_StoreUnchanged(t *testing.T) {
	r, db := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody("maria"))
	require.Equal(t, http.StatusCreated, w.Code)

	second := registerBody("maria")
	second["email"] = "other@example.com"
	second["first_name"] = "Other"

	w = doJSON(t, r, http.MethodPost, "/auth/register", "", second)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username_taken")

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, users)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody("maria"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "maria",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestLogout_InvalidatesToken(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody("maria"))
	require.Equal(t, http.StatusCreated, w.Code)

	var reg authResponse
	decodeBody(t, w, &reg)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", reg.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// token morto não autentica mais nada, nem outro logout
	w = doJSON(t, r, http.MethodGet, "/auth/profile", reg.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", reg.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
