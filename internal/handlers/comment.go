package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hackateen/mural/internal/models"
	"github.com/hackateen/mural/internal/repository"
	"github.com/hackateen/mural/internal/utils"
	"github.com/hackateen/mural/internal/validate"
)

type CommentHandler struct {
	comments *repository.CommentRepository
}

func NewCommentHandler(comments *repository.CommentRepository) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
	UserID  uint   `json:"userId"`
	PostID  uint   `json:"postId"`
}

func (h *CommentHandler) Create(ctx *gin.Context) {
	var payload map[string]interface{}

	if err := ctx.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	if err := validate.Required(payload, models.CommentRequiredFields); err != nil {
		abortError(ctx, err)
		return
	}

	var req CreateCommentRequest

	if err := ctx.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	date, err := parseDate(req.Date)

	if err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Data inválida!")
		return
	}

	comment := models.Comment{
		Content: req.Content,
		Date:    date,
		UserID:  req.UserID,
		PostID:  req.PostID,
	}

	if err := h.comments.Create(&comment); err != nil {
		log.Printf("Failed to create comment: %v", err)
		erroJSON(ctx, http.StatusInternalServerError, "Erro ao criar o comment")
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) List(ctx *gin.Context) {
	comments, err := h.comments.List()

	if err != nil {
		log.Printf("Failed to list comments: %v", err)
		abortError(ctx, err)
		return
	}

	if len(comments) == 0 {
		erroJSON(ctx, http.StatusNotFound, "Nenhum comment encontrado")
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Get(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "Comment não encontrado")
		return
	}

	comment, err := h.comments.GetByID(id)

	if err != nil {
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Update(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "Comment não encontrado")
		return
	}

	var payload map[string]interface{}

	if err := ctx.BindJSON(&payload); err != nil {
		erroJSON(ctx, http.StatusBadRequest, "Dados inválidos")
		return
	}

	updates := validate.Mutable(payload, models.CommentColumns)

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

	comment, err := h.comments.UpdateByID(id, updates)

	if err != nil {
		log.Printf("Failed to update comment %d: %v", id, err)
		abortError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		erroJSON(ctx, http.StatusNotFound, "Comment não encontrado")
		return
	}

	if err := h.comments.DeleteByID(id); err != nil {
		log.Printf("Failed to delete comment %d: %v", id, err)
		abortError(ctx, err)
		return
	}

	confirmJSON(ctx, http.StatusAccepted, "Comment deletado com sucesso")
}
