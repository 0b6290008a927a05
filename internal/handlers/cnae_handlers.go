package handlers

import (
	"errors"
	"net/http"
	"time"

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

// CNAEHandlers handles catalog-related HTTP requests
type CNAEHandlers struct {
	service *services.CNAEService
	ibge    *services.IBGEService
	logger  *logging.SafeLogger
}

// NewCNAEHandlers creates a new CNAE handlers instance
func NewCNAEHandlers(service *services.CNAEService, ibge *services.IBGEService, logger *logging.SafeLogger) *CNAEHandlers {
	return &CNAEHandlers{
		service: service,
		ibge:    ibge,
		logger:  logger,
	}
}

// SearchCNAE godoc
// @Summary Buscar CNAEs
// @Description Busca CNAEs por palavra-chave na descrição, código ou palavras-chave derivadas
// @Tags cnae
// @Produce json
// @Param query query string true "Texto da busca (mínimo 2 caracteres)"
// @Success 200 {array} models.CNAE "Resultados da busca (máximo 20)"
// @Failure 400 {object} ErrorResponse "Parâmetro query ausente ou muito curto"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cnae/search [get]
func (h *CNAEHandlers) SearchCNAE(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SearchCNAE")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "search_cnae"),
		attribute.String("service", "cnae"),
	)

	// The boundary rejects short queries; the service additionally
	// treats them as no-match for safety.
	ctx, validationSpan := utils.TraceInputValidation(ctx, "query_length", "query")
	query := c.Query("query")
	if query == "" {
		validationSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter is required"})
		return
	}
	if len([]rune(query)) < 2 {
		validationSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query must be at least 2 characters long"})
		return
	}
	utils.AddSpanAttribute(validationSpan, "query", query)
	validationSpan.End()

	ctx, querySpan := utils.TraceDatabaseFind(ctx, "cnae_data", "substring_search")
	results, err := h.service.Search(ctx, query)
	if err != nil {
		utils.RecordErrorInSpan(querySpan, err, map[string]interface{}{
			"operation": "search_cnae",
			"query":     query,
		})
		querySpan.End()
		observability.CNAESearches.WithLabelValues("error").Inc()
		logger.Error("failed to search CNAEs", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search CNAEs"})
		return
	}
	utils.AddSpanAttribute(querySpan, "results_count", len(results))
	querySpan.End()

	observability.CNAESearches.WithLabelValues("success").Inc()
	observability.DatabaseOperations.WithLabelValues("read", "success").Inc()

	c.JSON(http.StatusOK, results)

	logger.Debug("SearchCNAE completed",
		zap.String("query", query),
		zap.Int("results_count", len(results)),
		zap.Duration("total_duration", time.Since(startTime)))
}

// ListCNAE godoc
// @Summary Listar CNAEs
// @Description Recupera todos os registros do catálogo de CNAEs
// @Tags cnae
// @Produce json
// @Success 200 {array} models.CNAE "Catálogo completo"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cnae [get]
func (h *CNAEHandlers) ListCNAE(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListCNAE")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "list_cnae"),
		attribute.String("service", "cnae"),
	)

	ctx, querySpan := utils.TraceDatabaseFind(ctx, "cnae_data", "all")
	records, err := h.service.GetAll(ctx)
	if err != nil {
		utils.RecordErrorInSpan(querySpan, err, map[string]interface{}{
			"operation": "list_cnae",
		})
		querySpan.End()
		logger.Error("failed to list CNAEs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list CNAEs"})
		return
	}
	utils.AddSpanAttribute(querySpan, "results_count", len(records))
	querySpan.End()

	observability.DatabaseOperations.WithLabelValues("read", "success").Inc()

	c.JSON(http.StatusOK, records)
}

// CreateCNAE godoc
// @Summary Criar CNAE
// @Description Insere um registro no catálogo de CNAEs
// @Tags cnae
// @Accept json
// @Produce json
// @Param cnae body models.CNAEInput true "Dados do CNAE"
// @Success 201 {object} models.CNAE "Registro criado"
// @Failure 400 {object} ValidationErrorResponse "Campos obrigatórios ausentes"
// @Failure 409 {object} ErrorResponse "Código já cadastrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cnae [post]
func (h *CNAEHandlers) CreateCNAE(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateCNAE")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "create_cnae"),
		attribute.String("service", "cnae"),
	)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "cnae_input")
	var input models.CNAEInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	parseSpan.End()

	// Validation failures are client errors, not server faults
	ctx, validationSpan := utils.TraceInputValidation(ctx, "cnae_input", "code,description")
	if validation := utils.ValidateCNAEInput(input); !validation.IsValid {
		validationSpan.End()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validation.Errors,
		})
		return
	}
	validationSpan.End()

	ctx, insertSpan := utils.TraceDatabaseInsert(ctx, "cnae_data")
	record, err := h.service.Create(ctx, input)
	if err != nil {
		utils.RecordErrorInSpan(insertSpan, err, map[string]interface{}{
			"operation": "create_cnae",
			"code":      input.Code,
		})
		insertSpan.End()
		if errors.Is(err, models.ErrCNAECodeExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "CNAE code already exists"})
			return
		}
		logger.Error("failed to create CNAE", zap.String("code", input.Code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create CNAE"})
		return
	}
	insertSpan.End()

	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()

	c.JSON(http.StatusCreated, record)
}

// InitCNAE godoc
// @Summary Inicializar catálogo de CNAEs
// @Description Popula o catálogo a partir do dataset embutido; não faz nada se o catálogo já tiver registros
// @Tags cnae
// @Produce json
// @Success 200 {object} MessageResponse "Catálogo inicializado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cnae/init [get]
func (h *CNAEHandlers) InitCNAE(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "InitCNAE")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "init_cnae"),
		attribute.String("service", "cnae"),
	)

	if err := h.service.Seed(ctx); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"operation": "init_cnae",
		})
		logger.Error("failed to seed CNAE catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize CNAE data"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "CNAE data initialized successfully"})
}

// GetCNAEDetails godoc
// @Summary Detalhes de CNAE no IBGE
// @Description Consulta a subclasse do CNAE na API pública do IBGE e devolve os dados no formato interno
// @Tags cnae
// @Produce json
// @Param code path string true "Código da subclasse CNAE"
// @Success 200 {object} models.CNAEDetails "Detalhes do CNAE"
// @Failure 404 {object} ErrorResponse "CNAE não encontrado na base do IBGE"
// @Failure 502 {object} ErrorResponse "Falha ao consultar o IBGE"
// @Router /api/cnae/{code}/details [get]
func (h *CNAEHandlers) GetCNAEDetails(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetCNAEDetails")
	defer span.End()

	logger := observability.Logger()
	code := c.Param("code")

	span.SetAttributes(
		attribute.String("operation", "get_cnae_details"),
		attribute.String("service", "cnae"),
		attribute.String("code", code),
	)

	ctx, externalSpan := utils.TraceExternalService(ctx, "ibge", "cnae_subclass_lookup")
	details, err := h.ibge.GetCNAEDetails(ctx, code)
	if err != nil {
		utils.RecordErrorInSpan(externalSpan, err, map[string]interface{}{
			"operation": "get_cnae_details",
			"code":      code,
		})
		externalSpan.End()
		if errors.Is(err, models.ErrCNAENotFound) {
			observability.ExternalLookups.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CNAE não encontrado na base do IBGE"})
			return
		}
		observability.ExternalLookups.WithLabelValues("error").Inc()
		logger.Error("failed to fetch CNAE details from IBGE", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Erro ao consultar dados do IBGE"})
		return
	}
	externalSpan.End()

	observability.ExternalLookups.WithLabelValues("success").Inc()

	c.JSON(http.StatusOK, details)
}
