package handlers

import (
	"net/http"

	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/observability"
	"github.com/contaplena/site-api/internal/services"
	"github.com/contaplena/site-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ContactHandlers handles contact form HTTP requests
type ContactHandlers struct {
	service *services.ContactService
	logger  *logging.SafeLogger
}

// NewContactHandlers creates a new contact handlers instance
func NewContactHandlers(service *services.ContactService, logger *logging.SafeLogger) *ContactHandlers {
	return &ContactHandlers{
		service: service,
		logger:  logger,
	}
}

// CreateSubmission godoc
// @Summary Enviar mensagem de contato
// @Description Registra uma mensagem do formulário de contato
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body models.ContactSubmissionInput true "Dados do contato"
// @Success 201 {object} models.ContactSubmissionResponse "Mensagem registrada"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/contact [post]
func (h *ContactHandlers) CreateSubmission(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateSubmission")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "create_submission"),
		attribute.String("service", "contact"),
	)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "contact_submission")
	var input models.ContactSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		observability.ContactSubmissions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	parseSpan.End()

	ctx, insertSpan := utils.TraceDatabaseInsert(ctx, "contact_submissions")
	submission, validation, err := h.service.RecordSubmission(ctx, input)
	if validation != nil && !validation.IsValid {
		insertSpan.End()
		observability.ContactSubmissions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validation.Errors,
		})
		return
	}
	if err != nil {
		utils.RecordErrorInSpan(insertSpan, err, map[string]interface{}{
			"operation": "create_submission",
		})
		insertSpan.End()
		observability.ContactSubmissions.WithLabelValues("error").Inc()
		logger.Error("failed to record contact submission",
			zap.String("email", observability.MaskEmail(input.Email)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record contact submission"})
		return
	}
	insertSpan.End()

	observability.ContactSubmissions.WithLabelValues("success").Inc()
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()

	c.JSON(http.StatusCreated, models.ContactSubmissionResponse{
		Message: "Mensagem enviada com sucesso! Entraremos em contato em breve.",
		ID:      submission.ID,
	})
}
