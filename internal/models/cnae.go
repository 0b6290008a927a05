package models

// CNAE represents one record of the classification catalog
// (Classificação Nacional de Atividades Econômicas), enriched with
// MEI eligibility metadata and a precomputed keyword blob.
type CNAE struct {
	ID                   int64    `bson:"_id" json:"id"`
	Code                 string   `bson:"code" json:"code"`
	Description          string   `bson:"description" json:"description"`
	CanBeMEI             bool     `bson:"can_be_mei" json:"can_be_mei"`
	IsFatorR             bool     `bson:"is_fator_r" json:"is_fator_r"`
	AllowedActivities    []string `bson:"allowed_activities" json:"allowed_activities"`
	RestrictedActivities []string `bson:"restricted_activities" json:"restricted_activities"`
	Observations         string   `bson:"observations" json:"observations"`
	// Keywords is derived from Description at creation time and used
	// only for matching, never displayed.
	Keywords string `bson:"keywords" json:"keywords"`
}

// CNAEInput is the payload accepted when creating a catalog record.
// Code and Description are required; everything else defaults to
// false/empty when omitted.
type CNAEInput struct {
	Code                 string   `json:"code"`
	Description          string   `json:"description"`
	CanBeMEI             bool     `json:"can_be_mei"`
	IsFatorR             bool     `json:"is_fator_r"`
	AllowedActivities    []string `json:"allowed_activities"`
	RestrictedActivities []string `json:"restricted_activities"`
	Observations         string   `json:"observations"`
	Keywords             string   `json:"keywords"`
}

// SeedEntry is one (code, description) pair from the embedded seed dataset
type SeedEntry struct {
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
}
