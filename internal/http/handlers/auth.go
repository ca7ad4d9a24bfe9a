package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "ayambil/internal/config"
	"ayambil/internal/http/middleware"
	"ayambil/internal/repositories"
	"ayambil/internal/utils"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret installs the signing key from the environment at startup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// JWTSecret exposes the active key for the auth middleware.
func JWTSecret() []byte { return jwtSecret }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.AdminRepository{DB: intconfig.DB}
	user, err := repo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to look up user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create token", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "username="+user.Username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": signed,
			"user": gin.H{
				"username": user.Username,
				"role":     user.Role,
			},
		},
	})
}
