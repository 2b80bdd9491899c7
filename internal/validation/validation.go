// Package validation verifica colisoes de dados unicos entre as duas tabelas
// de usuarios antes de um cadastro. E-mail e telefone sao unicos na uniao
// freelancer+contratante; CPF so entre freelancers e CNPJ so entre
// contratantes.
//
// A verificacao e best-effort: le um snapshot das duas tabelas e compara em
// memoria. Nao substitui uma constraint de unicidade no banco como arbitro
// final em cadastros concorrentes.
package validation

import "strings"

// ReportPrefix e o prefixo fixo do relatorio. Um relatorio igual ao prefixo
// significa que nenhum campo colidiu e o cadastro pode prosseguir.
const ReportPrefix = "Dados já cadastrados: "

const (
	LabelEmail    = "E-mail"
	LabelTelefone = "Telefone"
	LabelCPF      = "CPF"
	LabelCNPJ     = "CNPJ"
)

// FreelancerRecord e a projecao de campos unicos de um freelancer existente.
type FreelancerRecord struct {
	Email    string
	Telefone string
	CPF      string
}

// ContratanteRecord e a projecao de campos unicos de um contratante existente.
type ContratanteRecord struct {
	Email    string
	Telefone string
	CNPJ     string
}

// Candidate descreve o cadastro sendo validado. Exatamente um entre CPF e
// CNPJ deve estar preenchido, conforme o tipo de conta.
type Candidate struct {
	Email    string
	Telefone string
	CPF      string
	CNPJ     string
}

// Report percorre os dois snapshots e devolve o relatorio de campos ja
// cadastrados. Cada rotulo entra no maximo uma vez, na ordem em que foi
// encontrado, unido por " | " apos o prefixo fixo.
func Report(c Candidate, freelancers []FreelancerRecord, contratantes []ContratanteRecord) string {
	var labels []string
	seen := map[string]bool{}

	add := func(label string) {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}

	for _, f := range freelancers {
		if strings.EqualFold(f.Email, c.Email) {
			add(LabelEmail)
		}
		if strings.EqualFold(f.Telefone, c.Telefone) {
			add(LabelTelefone)
		}
		if c.CPF != "" && strings.EqualFold(f.CPF, c.CPF) {
			add(LabelCPF)
		}
	}
	for _, ct := range contratantes {
		if strings.EqualFold(ct.Email, c.Email) {
			add(LabelEmail)
		}
		if strings.EqualFold(ct.Telefone, c.Telefone) {
			add(LabelTelefone)
		}
		if c.CNPJ != "" && strings.EqualFold(ct.CNPJ, c.CNPJ) {
			add(LabelCNPJ)
		}
	}

	return ReportPrefix + strings.Join(labels, " | ")
}

// Clear informa se o relatorio e o sentinela de "nenhuma colisao".
func Clear(report string) bool {
	return report == ReportPrefix
}
