package handlers

import (
	"net/http"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/observability"
	"github.com/contaplena/site-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e suas dependências (MongoDB e Redis)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	logger := observability.Logger()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	_, mongoSpan := utils.TraceExternalService(ctx, "mongodb", "ping")
	if err := config.MongoDB.Client().Ping(ctx, nil); err != nil {
		utils.RecordErrorInSpan(mongoSpan, err, map[string]interface{}{
			"service.name":      "mongodb",
			"service.operation": "ping",
		})
		health.Status = "unhealthy"
		health.Services["mongodb"] = "unhealthy"
	} else {
		utils.AddSpanAttribute(mongoSpan, "service.status", "healthy")
		health.Services["mongodb"] = "healthy"
	}
	mongoSpan.End()

	_, redisSpan := utils.TraceExternalService(ctx, "redis", "ping")
	if config.Redis == nil {
		health.Services["redis"] = "not_configured"
	} else if err := config.Redis.Ping(ctx).Err(); err != nil {
		utils.RecordErrorInSpan(redisSpan, err, map[string]interface{}{
			"service.name":      "redis",
			"service.operation": "ping",
		})
		health.Status = "unhealthy"
		health.Services["redis"] = "unhealthy"
	} else {
		utils.AddSpanAttribute(redisSpan, "service.status", "healthy")
		health.Services["redis"] = "healthy"
	}
	redisSpan.End()

	span.SetAttributes(
		attribute.String("health.status", health.Status),
		attribute.String("health.mongodb", health.Services["mongodb"]),
		attribute.String("health.redis", health.Services["redis"]),
	)

	if health.Status == "healthy" {
		c.JSON(http.StatusOK, health)
	} else {
		c.JSON(http.StatusServiceUnavailable, health)
	}

	logger.Debug("HealthCheck completed",
		zap.String("status", health.Status),
		zap.Duration("total_duration", time.Since(startTime)))
}
