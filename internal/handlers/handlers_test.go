package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contaplena/site-api/internal/services"
	"github.com/contaplena/site-api/internal/utils/httpclient"
	"github.com/gin-gonic/gin"
)

func setupRouter(cnae *CNAEHandlers, contact *ContactHandlers, blog *BlogHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	if cnae != nil {
		api.GET("/cnae/search", cnae.SearchCNAE)
		api.GET("/cnae", cnae.ListCNAE)
		api.POST("/cnae", cnae.CreateCNAE)
		api.GET("/cnae/init", cnae.InitCNAE)
		api.GET("/cnae/:code/details", cnae.GetCNAEDetails)
	}
	if contact != nil {
		api.POST("/contact", contact.CreateSubmission)
	}
	if blog != nil {
		api.GET("/blog", blog.ListPosts)
		api.GET("/blog/:slug", blog.GetPostBySlug)
	}
	return r
}

func TestSearchCNAE_MissingQuery(t *testing.T) {
	// The request is rejected before any storage access
	r := setupRouter(NewCNAEHandlers(nil, nil, nil), nil, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/cnae/search", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSearchCNAE_ShortQuery(t *testing.T) {
	r := setupRouter(NewCNAEHandlers(nil, nil, nil), nil, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/cnae/search?query=a", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Error == "" {
		t.Error("expected an error message in the response")
	}
}

func TestCreateCNAE_InvalidBody(t *testing.T) {
	r := setupRouter(NewCNAEHandlers(nil, nil, nil), nil, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cnae", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateCNAE_MissingFields(t *testing.T) {
	r := setupRouter(NewCNAEHandlers(nil, nil, nil), nil, nil)
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"code": "  "})
	req, _ := http.NewRequest("POST", "/api/cnae", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(resp.Fields))
	}
}

func TestCreateSubmission_InvalidBody(t *testing.T) {
	contact := NewContactHandlers(services.NewContactService(nil, nil), nil)
	r := setupRouter(nil, contact, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateSubmission_ValidationErrors(t *testing.T) {
	// Validation fails before the service touches storage, so a
	// database-less service instance is enough here
	contact := NewContactHandlers(services.NewContactService(nil, nil), nil)
	r := setupRouter(nil, contact, nil)
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{
		"name":    "A",
		"email":   "not-an-email",
		"phone":   "123",
		"message": "hello",
	})
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %+v", len(resp.Fields), resp.Fields)
	}
}

func TestGetCNAEDetails_OK(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":9602501,"descricao":"Cabeleireiros, manicure e pedicure","observacoes":"Inclui salões de beleza"}]`))
	}))
	defer upstream.Close()

	pool := httpclient.NewHTTPClientPool(1, 5*time.Second)
	defer pool.Close()
	ibge := services.NewIBGEService(upstream.URL, pool, nil)
	r := setupRouter(NewCNAEHandlers(nil, ibge, nil), nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/cnae/9602501/details", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var details map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &details); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if details["source"] != "IBGE" {
		t.Errorf("expected source IBGE, got %v", details["source"])
	}
	if details["code"] != "9602501" {
		t.Errorf("expected code 9602501, got %v", details["code"])
	}
}

func TestGetCNAEDetails_NotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	pool := httpclient.NewHTTPClientPool(1, 5*time.Second)
	defer pool.Close()
	ibge := services.NewIBGEService(upstream.URL, pool, nil)
	r := setupRouter(NewCNAEHandlers(nil, ibge, nil), nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/cnae/0000000/details", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetCNAEDetails_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	pool := httpclient.NewHTTPClientPool(1, 5*time.Second)
	defer pool.Close()
	ibge := services.NewIBGEService(upstream.URL, pool, nil)
	r := setupRouter(NewCNAEHandlers(nil, ibge, nil), nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/cnae/9602501/details", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
