package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hackateen/mural/internal/apperror"
	"github.com/hackateen/mural/internal/auth"
	"github.com/hackateen/mural/internal/repository"
	"github.com/hackateen/mural/internal/utils"
)

type AuthHandler struct {
	users *repository.UserRepository
}

func NewAuthHandler(users *repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials against the stored bcrypt hash and issues
// a one-hour bearer token. Unknown email and wrong password answer the
// same way so the endpoint does not leak which one failed.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		abortError(ctx, apperror.InvalidCredentials())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetByEmail(email)

	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			abortError(ctx, apperror.InvalidCredentials())
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		abortError(ctx, err)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		abortError(ctx, apperror.InvalidCredentials())
		return
	}

	token, err := auth.GenerateJWT(user.UserID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the identity carried by the presented token.
func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusUnauthorized, "Token não fornecido")
		return
	}

	ctx.JSON(http.StatusOK, currentUser)
}
