package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

// TestContactSubmission posts a valid contact-form message
func TestContactSubmission(t *testing.T) {
	baseURL := getBaseURL(t)
	client := &http.Client{Timeout: 10 * time.Second}

	payload, _ := json.Marshal(map[string]string{
		"name":    "Teste E2E",
		"email":   "teste-e2e@example.com",
		"phone":   "(21) 99999-8888",
		"service": "abertura-mei",
		"message": "Mensagem enviada pelo teste de ponta a ponta",
	})

	resp, err := client.Post(baseURL+"/api/contact", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		t.Fatalf("Contact submission failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if _, ok := body["id"]; !ok {
		t.Error("Expected an id in the response")
	}
	if _, ok := body["message"]; !ok {
		t.Error("Expected a confirmation message in the response")
	}
}

// TestContactSubmissionRejectsInvalidInput verifies validation errors come back as 400
func TestContactSubmissionRejectsInvalidInput(t *testing.T) {
	baseURL := getBaseURL(t)
	client := &http.Client{Timeout: 10 * time.Second}

	payload, _ := json.Marshal(map[string]string{
		"name":  "A",
		"email": "invalido",
		"phone": "123",
	})

	resp, err := client.Post(baseURL+"/api/contact", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		t.Fatalf("Contact submission failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
