package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/booking-api/internal/config"
	"github.com/salonhub/booking-api/internal/dto"
	"github.com/salonhub/booking-api/internal/httperr"
	"github.com/salonhub/booking-api/internal/middleware"
	"github.com/salonhub/booking-api/internal/models"
	"github.com/salonhub/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.PasswordsMatch(req.Password, req.Password2) {
		httperr.BadRequest(c, "password_mismatch", "As senhas não conferem.")
		return
	}

	if !validators.IsPasswordLongEnough(req.Password) {
		httperr.BadRequest(c, "password_too_short", "A senha precisa de pelo menos 6 caracteres.")
		return
	}

	username := strings.TrimSpace(req.Username)

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "username_taken", "Nome de usuário já existe.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.config.BcryptCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	user := models.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hashed),
	}

	var token models.AuthToken

	// User, profile e token nascem na mesma transação:
	// falhou qualquer parte, não sobra registro pela metade.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:   user.ID,
			Phone:    req.Phone,
			Location: req.Location,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = profile

		token = models.AuthToken{
			Key:    uuid.NewString(),
			UserID: user.ID,
		}
		return tx.Create(&token).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Erro ao criar a conta.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token.Key,
		"user":  dto.NewUserDTO(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.Preload("Profile").
		Where("username = ?", strings.TrimSpace(req.Username)).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.getOrCreateToken(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Erro ao gerar o token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token.Key,
		"user":  dto.NewUserDTO(&user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	key := c.MustGet(middleware.ContextTokenKey).(string)

	if err := h.db.Where("key = ?", key).Delete(&models.AuthToken{}).Error; err != nil {
		httperr.Internal(c, "failed_to_logout", "Erro ao encerrar a sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged_out"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// --------- Token ---------

// Um token ativo por usuário; login repetido reusa o existente.
func (h *AuthHandler) getOrCreateToken(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := h.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	token = models.AuthToken{
		Key:    uuid.NewString(),
		UserID: userID,
	}
	if err := h.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
