package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestAtualizarInformacoesSobrescreveApenasCamposPresentes(t *testing.T) {
	f := Freelancer{
		Nome:        "John Doe",
		Telefone:    "11987654321",
		Email:       "john.doe@example.com",
		Senha:       "hash-original",
		ValorHora:   100,
		Senioridade: "Senior",
		Descricao:   "descrição original",
	}

	f.AtualizarInformacoes(UpdateFreelancerData{
		Nome:      ptr("John Smith"),
		ValorHora: ptr(150.0),
	})

	assert.Equal(t, "John Smith", f.Nome)
	assert.Equal(t, 150.0, f.ValorHora)
	// Campos ausentes no patch ficam intactos.
	assert.Equal(t, "11987654321", f.Telefone)
	assert.Equal(t, "john.doe@example.com", f.Email)
	assert.Equal(t, "hash-original", f.Senha)
	assert.Equal(t, "Senior", f.Senioridade)
	assert.Equal(t, "descrição original", f.Descricao)
}

func TestAtualizarInformacoesPatchVazio(t *testing.T) {
	f := Freelancer{Nome: "Ana", Telefone: "111"}

	f.AtualizarInformacoes(UpdateFreelancerData{})

	assert.Equal(t, "Ana", f.Nome)
	assert.Equal(t, "111", f.Telefone)
}

func TestCicloDesativarAtivar(t *testing.T) {
	f := Freelancer{Ativo: true}

	f.Desativar()
	assert.False(t, f.Ativo)

	f.AtivarConta()
	assert.True(t, f.Ativo)
}

func TestContratanteAtualizarInformacoes(t *testing.T) {
	c := Contratante{
		Nome:     "Empresa X",
		Telefone: "222",
		Email:    "x@empresa.com",
		Senha:    "hash",
	}

	c.AtualizarInformacoes(UpdateContratanteData{
		Email: ptr("novo@empresa.com"),
	})

	assert.Equal(t, "novo@empresa.com", c.Email)
	assert.Equal(t, "Empresa X", c.Nome)
	assert.Equal(t, "222", c.Telefone)
	assert.Equal(t, "hash", c.Senha)
}

func TestContratanteCicloDesativarAtivar(t *testing.T) {
	c := Contratante{Ativo: true}

	c.Desativar()
	assert.False(t, c.Ativo)

	c.AtivarConta()
	assert.True(t, c.Ativo)
}
