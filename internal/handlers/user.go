package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hackateen/mural/internal/auth"
	"github.com/hackateen/mural/internal/models"
	"github.com/hackateen/mural/internal/repository"
	"github.com/hackateen/mural/internal/utils"
	"github.com/hackateen/mural/internal/validate"
)

type UserHandler struct {
	users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var payload map[string]interface{}

	if err := ctx.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	if err := validate.Required(payload, models.UserRequiredFields); err != nil {
		abortError(ctx, err)
		return
	}

	var req CreateUserRequest

	if err := ctx.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	hash, err := auth.HashPassword(req.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		erroJSON(ctx, http.StatusInternalServerError, "Erro interno no servidor")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
	}

	if err := h.users.Create(&user); err != nil {
		log.Printf("Failed to create user: %v", err)
		erroJSON(ctx, http.StatusInternalServerError, "Erro ao criar o user "+req.Name)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.users.List()

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		abortError(ctx, err)
		return
	}

	if len(users) == 0 {
		erroJSON(ctx, http.StatusNotFound, "Nenhum user encontrado")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "User não encontrado")
		return
	}

	user, err := h.users.GetByID(id)

	if err != nil {
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "User não encontrado")
		return
	}

	var payload map[string]interface{}

	if err := ctx.BindJSON(&payload); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	updates := validate.Mutable(payload, models.UserColumns)

	if len(updates) == 0 {
		erroJSON(ctx, http.StatusBadRequest, "Nenhum atributo válido para atualizar")
		return
	}

	if email, ok := updates["email"].(string); ok {
		updates["email"] = strings.ToLower(strings.TrimSpace(email))
	}

	// A changed password is hashed before it touches the store.
	if password, ok := updates["password"].(string); ok {
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			erroJSON(ctx, http.StatusInternalServerError, "Erro interno no servidor")
			return
		}
		updates["password"] = hash
	}

	user, err := h.users.UpdateByID(id, updates)

	if err != nil {
		log.Printf("Failed to update user %d: %v", id, err)
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "User não encontrado")
		return
	}

	// Dependent posts and their comments go with the user via the
	// store's cascade constraints.
	if err := h.users.DeleteByID(id); err != nil {
		log.Printf("Failed to delete user %d: %v", id, err)
		abortError(ctx, err)
		return
	}

	confirmJSON(ctx, http.StatusAccepted, "User deletado com sucesso")
}
