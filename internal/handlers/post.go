package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hackateen/mural/internal/models"
	"github.com/hackateen/mural/internal/repository"
	"github.com/hackateen/mural/internal/utils"
	"github.com/hackateen/mural/internal/validate"
	"gorm.io/datatypes"
)

type PostHandler struct {
	posts *repository.PostRepository
}

func NewPostHandler(posts *repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

type CreatePostRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Place       string `json:"place"`
	UserID      uint   `json:"userId"`
}

func (h *PostHandler) Create(ctx *gin.Context) {
	var payload map[string]interface{}

	if err := ctx.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	if err := validate.Required(payload, models.PostRequiredFields); err != nil {
		abortError(ctx, err)
		return
	}

	var req CreatePostRequest

	if err := ctx.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	// Date defaults to today when omitted.
	date := datatypes.Date(time.Now())

	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			erroJSON(ctx, http.StatusBadRequest, "Data inválida!")
			return
		}
	}

	post := models.Post{
		Title:       req.Title,
		Type:        req.Type,
		Content:     req.Content,
		Description: req.Description,
		Date:        date,
		Place:       req.Place,
		UserID:      req.UserID,
	}

	// An unknown type or a userId that references no user is rejected by
	// the store's constraints, not re-checked here.
	if err := h.posts.Create(&post); err != nil {
		log.Printf("Failed to create post: %v", err)
		erroJSON(ctx, http.StatusInternalServerError, "Erro ao criar o post "+req.Title)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

func (h *PostHandler) List(ctx *gin.Context) {
	posts, err := h.posts.List()

	if err != nil {
		log.Printf("Failed to list posts: %v", err)
		abortError(ctx, err)
		return
	}

	if len(posts) == 0 {
		erroJSON(ctx, http.StatusNotFound, "Nenhum post encontrado")
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "Post não encontrado")
		return
	}

	post, err := h.posts.GetByID(id)

	if err != nil {
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "Post não encontrado")
		return
	}

	var payload map[string]interface{}

	if err := ctx.BindJSON(&payload); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	updates := validate.Mutable(payload, models.PostColumns)

	if len(updates) == 0 {
		erroJSON(ctx, http.StatusBadRequest, "Nenhum atributo válido para atualizar")
		return
	}

	if raw, ok := updates["date"].(string); ok {
		date, err := parseDate(raw)
		if err != nil {
			erroJSON(ctx, http.StatusBadRequest, "Data inválida!")
			return
		}
		updates["date"] = date
	}

	post, err := h.posts.UpdateByID(id, updates)

	if err != nil {
		log.Printf("Failed to update post %d: %v", id, err)
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "Post não encontrado")
		return
	}

	if err := h.posts.DeleteByID(id); err != nil {
		log.Printf("Failed to delete post %d: %v", id, err)
		abortError(ctx, err)
		return
	}

	confirmJSON(ctx, http.StatusAccepted, "Post deletado com sucesso")
}
