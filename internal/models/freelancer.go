package models

import (
	"time"

	"github.com/google/uuid"
)

type Funcao string

const (
	FuncaoDesenvolvedorBackend  Funcao = "DESENVOLVEDOR_BACKEND"
	FuncaoDesenvolvedorFrontend Funcao = "DESENVOLVEDOR_FRONTEND"
	FuncaoDesenvolvedorMobile   Funcao = "DESENVOLVEDOR_MOBILE"
	FuncaoFullstack             Funcao = "FULLSTACK"
	FuncaoDevops                Funcao = "DEVOPS"
	FuncaoUXUI                  Funcao = "UX_UI"
	FuncaoQA                    Funcao = "QA"
)

type Freelancer struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome     string    `gorm:"not null" json:"nome"`
	Telefone string    `gorm:"type:varchar(30);not null" json:"telefone"`
	Email    string    `gorm:"type:varchar(150);not null" json:"email"`
	Senha    string    `gorm:"not null" json:"-"`

	CPF         string  `gorm:"type:varchar(14);not null" json:"cpf"`
	Funcao      Funcao  `gorm:"type:varchar(40);not null" json:"funcao"`
	ValorHora   float64 `gorm:"not null;default:0" json:"valor_hora"`
	Senioridade string  `gorm:"type:varchar(40)" json:"senioridade"`
	Descricao   string  `gorm:"type:text" json:"descricao"`

	// Foto de perfil; nil significa que nenhuma foto foi enviada ainda.
	Imagem []byte `gorm:"type:bytea" json:"-"`

	Contratacoes int  `gorm:"not null;default:0" json:"contratacoes"`
	Ativo        bool `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Especialidades []Especialidade `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"especialidades,omitempty"`
}

// UpdateFreelancerData carrega os campos opcionais de uma atualizacao parcial.
// Campo nil = nao altera.
type UpdateFreelancerData struct {
	Nome        *string  `json:"nome"`
	Telefone    *string  `json:"telefone"`
	Senha       *string  `json:"senha"`
	ValorHora   *float64 `json:"valor_hora"`
	Senioridade *string  `json:"senioridade"`
	Descricao   *string  `json:"descricao"`
}

// AtualizarInformacoes sobrescreve apenas os campos presentes no patch.
// Nao revalida unicidade de e-mail/telefone (paridade com o cadastro original).
func (f *Freelancer) AtualizarInformacoes(data UpdateFreelancerData) {
	if data.Nome != nil {
		f.Nome = *data.Nome
	}
	if data.Telefone != nil {
		f.Telefone = *data.Telefone
	}
	if data.Senha != nil {
		f.Senha = *data.Senha
	}
	if data.ValorHora != nil {
		f.ValorHora = *data.ValorHora
	}
	if data.Senioridade != nil {
		f.Senioridade = *data.Senioridade
	}
	if data.Descricao != nil {
		f.Descricao = *data.Descricao
	}
}

func (f *Freelancer) Desativar() {
	f.Ativo = false
}

func (f *Freelancer) AtivarConta() {
	f.Ativo = true
}
