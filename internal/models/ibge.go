package models

import "encoding/json"

// IBGESubclass mirrors one entry of the IBGE CNAE subclasses API response
type IBGESubclass struct {
	ID           json.Number `json:"id"`
	Descricao    string      `json:"descricao"`
	Observacoes  string      `json:"observacoes"`
}

// CNAEDetails is the reshaped IBGE response returned to the frontend
type CNAEDetails struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	Observations string `json:"observations"`
	Source       string `json:"source"`
}
