package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/utils/httpclient"
	"go.uber.org/zap"
)

// IBGEService fetches CNAE details from the national statistics
// institute's public registry and reshapes them for the frontend.
type IBGEService struct {
	baseURL string
	pool    *httpclient.HTTPClientPool
	logger  *logging.SafeLogger
}

// NewIBGEService creates a new IBGE lookup service
func NewIBGEService(baseURL string, pool *httpclient.HTTPClientPool, logger *logging.SafeLogger) *IBGEService {
	return &IBGEService{
		baseURL: baseURL,
		pool:    pool,
		logger:  logger,
	}
}

// GetCNAEDetails retrieves the subclass record for a code. A code the
// registry does not know yields models.ErrCNAENotFound.
func (s *IBGEService) GetCNAEDetails(ctx context.Context, code string) (*models.CNAEDetails, error) {
	url := fmt.Sprintf("%s/api/v2/cnae/subclasses/%s", s.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build IBGE request: %w", err)
	}

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		s.logger.Error("IBGE request failed", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("IBGE request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrCNAENotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("IBGE returned unexpected status %d", resp.StatusCode)
	}

	var subclasses []models.IBGESubclass
	if err := json.NewDecoder(resp.Body).Decode(&subclasses); err != nil {
		return nil, fmt.Errorf("failed to decode IBGE response: %w", err)
	}
	if len(subclasses) == 0 {
		return nil, models.ErrCNAENotFound
	}

	info := subclasses[0]
	return &models.CNAEDetails{
		Code:         info.ID.String(),
		Description:  info.Descricao,
		Observations: info.Observacoes,
		Source:       "IBGE",
	}, nil
}
