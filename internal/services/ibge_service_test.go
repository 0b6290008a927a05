package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/utils/httpclient"
)

func newIBGETestService(t *testing.T, handler http.HandlerFunc) (*IBGEService, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	pool := httpclient.NewHTTPClientPool(1, 5*time.Second)
	service := NewIBGEService(server.URL, pool, logging.Logger)
	return service, func() {
		server.Close()
		pool.Close()
	}
}

func TestGetCNAEDetails_ReshapesResponse(t *testing.T) {
	service, cleanup := newIBGETestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/cnae/subclasses/9602501" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 9602501, "descricao": "Cabeleireiros, manicure e pedicure", "observacoes": "Inclui salões de beleza"}]`))
	})
	defer cleanup()

	details, err := service.GetCNAEDetails(context.Background(), "9602501")
	if err != nil {
		t.Fatalf("GetCNAEDetails() error = %v", err)
	}

	if details.Code != "9602501" {
		t.Errorf("Code = %q, want 9602501", details.Code)
	}
	if details.Description != "Cabeleireiros, manicure e pedicure" {
		t.Errorf("Description = %q", details.Description)
	}
	if details.Observations != "Inclui salões de beleza" {
		t.Errorf("Observations = %q", details.Observations)
	}
	if details.Source != "IBGE" {
		t.Errorf("Source = %q, want IBGE", details.Source)
	}
}

func TestGetCNAEDetails_NotFoundStatus(t *testing.T) {
	service, cleanup := newIBGETestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer cleanup()

	_, err := service.GetCNAEDetails(context.Background(), "0000000")
	if !errors.Is(err, models.ErrCNAENotFound) {
		t.Errorf("GetCNAEDetails() error = %v, want ErrCNAENotFound", err)
	}
}

func TestGetCNAEDetails_EmptyResponse(t *testing.T) {
	service, cleanup := newIBGETestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer cleanup()

	_, err := service.GetCNAEDetails(context.Background(), "0000000")
	if !errors.Is(err, models.ErrCNAENotFound) {
		t.Errorf("GetCNAEDetails() error = %v, want ErrCNAENotFound", err)
	}
}

func TestGetCNAEDetails_UpstreamError(t *testing.T) {
	service, cleanup := newIBGETestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer cleanup()

	_, err := service.GetCNAEDetails(context.Background(), "0000000")
	if err == nil || errors.Is(err, models.ErrCNAENotFound) {
		t.Errorf("GetCNAEDetails() error = %v, want upstream failure", err)
	}
}
