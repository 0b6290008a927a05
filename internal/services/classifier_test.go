package services

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("6204000", "Consultoria em tecnologia da informação")
	second := Classify("6204000", "Consultoria em tecnologia da informação")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify() not deterministic: %+v != %+v", first, second)
	}
}

func TestClassify_KnownMEICode(t *testing.T) {
	c := Classify("9602501", "Cabeleireiros, manicure e pedicure")

	if !c.CanBeMEI {
		t.Error("Classify() CanBeMEI = false, want true for allow-listed code")
	}
	if !strings.Contains(c.Keywords, "cabeleireiros") {
		t.Errorf("Keywords = %q, want to contain 'cabeleireiros'", c.Keywords)
	}
	if !strings.Contains(c.Keywords, "manicure") {
		t.Errorf("Keywords = %q, want to contain 'manicure'", c.Keywords)
	}
}

func TestClassify_RetailSubstringGrantsMEI(t *testing.T) {
	c := Classify("0000000", "Comércio varejista de brinquedos")

	if !c.CanBeMEI {
		t.Error("CanBeMEI = false, want true for 'comércio varejista' description")
	}
	if c.Observations != "Permitido MEI até R$ 81.000 anuais" {
		t.Errorf("Observations = %q, want retail MEI text", c.Observations)
	}
}

func TestClassify_FatorR(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		description string
		want        bool
	}{
		{"allow-listed accounting code", "6920601", "Atividades de contabilidade", true},
		{"consultoria substring", "0000000", "Consultoria em gestão empresarial", true},
		{"técnic stem", "0000000", "Desenho técnico especializado", true},
		{"plain cultivation", "0111301", "Cultivo de arroz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.code, tt.description).IsFatorR; got != tt.want {
				t.Errorf("IsFatorR = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_AgriculturalBranch(t *testing.T) {
	c := Classify("0111301", "Cultivo de arroz")

	if len(c.AllowedActivities) == 0 || c.AllowedActivities[0] != "Plantio e cultivo" {
		t.Errorf("AllowedActivities = %v, want agricultural template", c.AllowedActivities)
	}
	if c.CanBeMEI {
		t.Error("CanBeMEI = true, want false for plain cultivation code")
	}
	if c.Observations != "Atividade rural - verificar legislação específica" {
		t.Errorf("Observations = %q, want rural fallback text", c.Observations)
	}
}

func TestClassify_ServicesBranch(t *testing.T) {
	c := Classify("8211300", "Serviços combinados de escritório e apoio administrativo")

	if !c.CanBeMEI {
		t.Error("CanBeMEI = false, want true for 'serviços' description")
	}
	if len(c.AllowedActivities) == 0 || c.AllowedActivities[0] != "Prestação de serviços" {
		t.Errorf("AllowedActivities = %v, want services template", c.AllowedActivities)
	}
}

func TestClassify_DefaultBranch(t *testing.T) {
	c := Classify("0000000", "Fabricação de móveis")

	if len(c.AllowedActivities) != 1 || c.AllowedActivities[0] != "Atividades relacionadas à descrição do CNAE" {
		t.Errorf("AllowedActivities = %v, want generic fallback", c.AllowedActivities)
	}
	if c.CanBeMEI {
		t.Error("CanBeMEI = true, want false for generic manufacturing")
	}
}

func TestDeriveKeywords(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"drops short tokens", "Cultivo de arroz", "cultivo arroz"},
		{"strips punctuation", "Cabeleireiros, manicure e pedicure", "cabeleireiros manicure pedicure"},
		{"keeps accented words", "Cultivo de cana-de-açúcar", "cultivo cana açúcar"},
		{"lowercases", "ARROZ Integral", "arroz integral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveKeywords(tt.description); got != tt.want {
				t.Errorf("DeriveKeywords(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestDeriveKeywords_Deterministic(t *testing.T) {
	const description = "Serviços de agronomia e de consultoria às atividades agrícolas e pecuárias"
	if DeriveKeywords(description) != DeriveKeywords(description) {
		t.Error("DeriveKeywords() not deterministic")
	}
}
