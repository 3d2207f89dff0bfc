package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type AuthController struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthController(s store.Store, secret []byte) *AuthController {
	return &AuthController{store: s, secret: secret, tokenTTL: 24 * time.Hour}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies club-member credentials and issues a token carrying the
// club/role claims the rest of the API authorizes against.
func (ctl *AuthController) Login(c *gin.Context) {
	var in loginInput
	if !bindJSON(c, &in) {
		return
	}

	user, err := ctl.store.UserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		fail(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := utils.GenerateToken(ctl.secret, utils.Claims{
		UserID: user.ID,
		Email:  user.Email,
		ClubID: user.ClubID,
		Role:   user.Role,
	}, ctl.tokenTTL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      user.Role,
			"club_id":   user.ClubID,
		},
	})
}
