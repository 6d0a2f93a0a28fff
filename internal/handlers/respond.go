package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackateen/mural/internal/apperror"
	"gorm.io/datatypes"
)

// Error envelope: {"erro": {"mensagem": ...}}. Delete confirmations use
// {"response": {"mensagem": ...}}. Both shapes predate this codebase and
// are part of the wire contract.

func erroJSON(ctx *gin.Context, status int, mensagem string) {
	ctx.JSON(status, gin.H{"erro": gin.H{"mensagem": mensagem}})
}

func confirmJSON(ctx *gin.Context, status int, mensagem string) {
	ctx.JSON(status, gin.H{"response": gin.H{"mensagem": mensagem}})
}

// abortError maps the error taxonomy to a status code and writes the
// envelope. Unclassified store failures stay opaque 500s.
func abortError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		erroJSON(ctx, http.StatusBadRequest, apperror.Mensagem(err))
	case errors.Is(err, apperror.ErrNotFound):
		erroJSON(ctx, http.StatusNotFound, apperror.Mensagem(err))
	case errors.Is(err, apperror.ErrInvalidCredentials):
		erroJSON(ctx, http.StatusUnauthorized, apperror.Mensagem(err))
	case errors.Is(err, apperror.ErrConflict):
		erroJSON(ctx, http.StatusInternalServerError, apperror.Mensagem(err))
	default:
		erroJSON(ctx, http.StatusInternalServerError, "Erro interno no servidor")
	}
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)

	if err != nil {
		return datatypes.Date{}, err
	}

	return datatypes.Date(t), nil
}
