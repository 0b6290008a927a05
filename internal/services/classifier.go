package services

import (
	"strings"
	"unicode"
)

// Classification carries the eligibility metadata derived from a CNAE
// code and its activity description.
type Classification struct {
	CanBeMEI             bool
	IsFatorR             bool
	AllowedActivities    []string
	RestrictedActivities []string
	Observations         string
	Keywords             string
}

// meiCommonCodes lists codes known to be registrable as MEI
// (microempreendedor individual).
var meiCommonCodes = map[string]bool{
	"9602501": true, // Cabeleireiros
	"6204000": true, // Consultoria TI
	"4789005": true, // Comércio saneantes
	"8211300": true, // Serviços escritório
	"7490103": true, // Consultoria agrícola
	"4721104": true, // Doces e balas
	"4722901": true, // Açougue
	"4784900": true, // GLP
	"7420001": true, // Fotografia
	"9529102": true, // Chaveiros
	"9601701": true, // Lavanderia
}

// fatorRCodes lists codes subject to the Fator R rate rule under the
// Simples Nacional regime.
var fatorRCodes = map[string]bool{
	"6204000": true, // Consultoria TI
	"7490103": true, // Consultoria agrícola
	"6920601": true, // Contabilidade
	"7111100": true, // Arquitetura
	"7112000": true, // Engenharia
}

// Classify derives the eligibility metadata for a classification code.
// It is pure and deterministic: the same (code, description) pair always
// yields the same result. The substring rules reproduce the firm's
// existing business rule and are not authoritative tax law.
func Classify(code, description string) Classification {
	lower := strings.ToLower(description)

	canBeMEI := meiCommonCodes[code] ||
		strings.Contains(lower, "comércio varejista") ||
		strings.Contains(lower, "serviços")

	isFatorR := fatorRCodes[code] ||
		strings.Contains(lower, "consultoria") ||
		strings.Contains(lower, "técnic")

	c := Classification{
		CanBeMEI: canBeMEI,
		IsFatorR: isFatorR,
		Keywords: DeriveKeywords(description),
	}

	switch {
	case strings.Contains(lower, "cultivo"):
		c.AllowedActivities = []string{"Plantio e cultivo", "Colheita", "Venda da produção própria"}
		c.RestrictedActivities = []string{"Beneficiamento industrial", "Comércio atacadista"}
		if canBeMEI {
			c.Observations = "MEI rural pode ser aplicável"
		} else {
			c.Observations = "Atividade rural - verificar legislação específica"
		}
	case strings.Contains(lower, "comércio"):
		c.AllowedActivities = []string{"Venda de produtos", "Atendimento ao cliente", "Estoque"}
		c.RestrictedActivities = []string{"Produtos controlados", "Venda de medicamentos"}
		if canBeMEI {
			c.Observations = "Permitido MEI até R$ 81.000 anuais"
		} else {
			c.Observations = "Verificar enquadramento tributário"
		}
	case strings.Contains(lower, "serviços"):
		c.AllowedActivities = []string{"Prestação de serviços", "Atendimento personalizado", "Consultoria básica"}
		c.RestrictedActivities = []string{"Atividades regulamentadas", "Serviços que exigem registro profissional"}
		if canBeMEI {
			c.Observations = "MEI de serviços - verificar atividades permitidas"
		} else {
			c.Observations = "Pode requerer qualificação específica"
		}
	default:
		c.AllowedActivities = []string{"Atividades relacionadas à descrição do CNAE"}
		c.RestrictedActivities = []string{"Verificar legislação específica do setor"}
		if canBeMEI {
			c.Observations = "Consultar lista de atividades MEI"
		} else {
			c.Observations = "Verificar enquadramento na Receita Federal"
		}
	}

	return c
}

// DeriveKeywords builds the search keyword blob for a description:
// lower-cased, punctuation stripped, tokens of length <= 2 discarded.
func DeriveKeywords(description string) string {
	lower := strings.ToLower(description)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, lower)

	words := strings.Fields(cleaned)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) > 2 {
			keywords = append(keywords, w)
		}
	}
	return strings.Join(keywords, " ")
}
