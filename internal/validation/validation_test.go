package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatoFreelancer() Candidate {
	return Candidate{
		Email:    "a@x.com",
		Telefone: "111",
		CPF:      "CPF1",
	}
}

func TestReportSnapshotsVazios(t *testing.T) {
	report := Report(candidatoFreelancer(), nil, nil)

	assert.Equal(t, ReportPrefix, report)
	assert.True(t, Clear(report))
}

func TestReportSemColisao(t *testing.T) {
	freelancers := []FreelancerRecord{
		{Email: "b@x.com", Telefone: "222", CPF: "CPF2"},
	}
	contratantes := []ContratanteRecord{
		{Email: "c@x.com", Telefone: "333", CNPJ: "CNPJ3"},
	}

	report := Report(candidatoFreelancer(), freelancers, contratantes)
	assert.True(t, Clear(report))
}

func TestReportColisaoUnicoCampo(t *testing.T) {
	freelancers := []FreelancerRecord{
		{Email: "a@x.com", Telefone: "999", CPF: "CPF9"},
	}

	report := Report(candidatoFreelancer(), freelancers, nil)

	require.False(t, Clear(report))
	assert.Equal(t, ReportPrefix+"E-mail", report)
}

func TestReportEmailCaseInsensitive(t *testing.T) {
	freelancers := []FreelancerRecord{
		{Email: "A@X.COM", Telefone: "999", CPF: "CPF9"},
	}

	report := Report(candidatoFreelancer(), freelancers, nil)
	assert.Equal(t, ReportPrefix+"E-mail", report)
}

func TestReportRotuloEntraUmaVez(t *testing.T) {
	// Dois registros colidem no mesmo campo; o rotulo aparece uma unica vez.
	freelancers := []FreelancerRecord{
		{Email: "a@x.com", Telefone: "999", CPF: "CPF9"},
		{Email: "a@x.com", Telefone: "888", CPF: "CPF8"},
	}

	report := Report(candidatoFreelancer(), freelancers, nil)
	assert.Equal(t, ReportPrefix+"E-mail", report)
}

func TestReportMultiplosCamposOrdemDeEncontro(t *testing.T) {
	freelancers := []FreelancerRecord{
		{Email: "a@x.com", Telefone: "999", CPF: "CPF9"},
		{Email: "z@x.com", Telefone: "111", CPF: "CPF1"},
	}

	report := Report(candidatoFreelancer(), freelancers, nil)
	assert.Equal(t, ReportPrefix+"E-mail | Telefone | CPF", report)
}

func TestReportColisaoAtravessaTabelas(t *testing.T) {
	// E-mail em freelancer, telefone em contratante: ambos entram.
	freelancers := []FreelancerRecord{
		{Email: "a@x.com", Telefone: "999", CPF: "CPF9"},
	}
	contratantes := []ContratanteRecord{
		{Email: "c@x.com", Telefone: "111", CNPJ: "CNPJ3"},
	}

	report := Report(candidatoFreelancer(), freelancers, contratantes)
	assert.Equal(t, ReportPrefix+"E-mail | Telefone", report)
}

func TestReportCPFNaoColideComContratante(t *testing.T) {
	// CPF do candidato so e comparado contra freelancers; CNPJ igual ao CPF
	// de um contratante nao conta para um cadastro de freelancer.
	contratantes := []ContratanteRecord{
		{Email: "c@x.com", Telefone: "333", CNPJ: "CPF1"},
	}

	report := Report(candidatoFreelancer(), nil, contratantes)
	assert.True(t, Clear(report))
}

func TestReportCandidatoContratante(t *testing.T) {
	candidato := Candidate{
		Email:    "novo@x.com",
		Telefone: "444",
		CNPJ:     "CNPJ7",
	}
	contratantes := []ContratanteRecord{
		{Email: "outro@x.com", Telefone: "555", CNPJ: "cnpj7"},
	}

	report := Report(candidato, nil, contratantes)
	assert.Equal(t, ReportPrefix+"CNPJ", report)
}
