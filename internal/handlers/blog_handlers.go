package handlers

import (
	"errors"
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

// BlogHandlers handles blog HTTP requests
type BlogHandlers struct {
	service *services.BlogService
	logger  *logging.SafeLogger
}

// NewBlogHandlers creates a new blog handlers instance
func NewBlogHandlers(service *services.BlogService, logger *logging.SafeLogger) *BlogHandlers {
	return &BlogHandlers{
		service: service,
		logger:  logger,
	}
}

// ListPosts godoc
// @Summary Listar posts do blog
// @Description Recupera todos os posts publicados, do mais recente ao mais antigo
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost "Posts publicados"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/blog [get]
func (h *BlogHandlers) ListPosts(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPosts")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "list_posts"),
		attribute.String("service", "blog"),
	)

	ctx, querySpan := utils.TraceDatabaseFind(ctx, "blog_posts", "all")
	posts, err := h.service.ListPosts(ctx)
	if err != nil {
		utils.RecordErrorInSpan(querySpan, err, map[string]interface{}{
			"operation": "list_posts",
		})
		querySpan.End()
		logger.Error("failed to list blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list blog posts"})
		return
	}
	utils.AddSpanAttribute(querySpan, "results_count", len(posts))
	querySpan.End()

	observability.DatabaseOperations.WithLabelValues("read", "success").Inc()

	c.JSON(http.StatusOK, posts)
}

// GetPostBySlug godoc
// @Summary Buscar post por slug
// @Description Recupera um post do blog pelo seu slug
// @Tags blog
// @Produce json
// @Param slug path string true "Slug do post"
// @Success 200 {object} models.BlogPost "Post encontrado"
// @Failure 404 {object} ErrorResponse "Post não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/blog/{slug} [get]
func (h *BlogHandlers) GetPostBySlug(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPostBySlug")
	defer span.End()

	logger := observability.Logger()
	slug := c.Param("slug")

	span.SetAttributes(
		attribute.String("operation", "get_post_by_slug"),
		attribute.String("service", "blog"),
		attribute.String("slug", slug),
	)

	ctx, querySpan := utils.TraceDatabaseFind(ctx, "blog_posts", "slug")
	post, err := h.service.GetPostBySlug(ctx, slug)
	if err != nil {
		utils.RecordErrorInSpan(querySpan, err, map[string]interface{}{
			"operation": "get_post_by_slug",
			"slug":      slug,
		})
		querySpan.End()
		if errors.Is(err, models.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post não encontrado"})
			return
		}
		logger.Error("failed to get blog post", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get blog post"})
		return
	}
	querySpan.End()

	observability.DatabaseOperations.WithLabelValues("read", "success").Inc()

	c.JSON(http.StatusOK, post)
}
