package models

import (
	"time"

	"github.com/google/uuid"
)

type Contratante struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome     string    `gorm:"not null" json:"nome"`
	Telefone string    `gorm:"type:varchar(30);not null" json:"telefone"`
	Email    string    `gorm:"type:varchar(150);not null" json:"email"`
	Senha    string    `gorm:"not null" json:"-"`

	CNPJ string `gorm:"type:varchar(18);not null" json:"cnpj"`

	Imagem []byte `gorm:"type:bytea" json:"-"`

	Contratacoes int  `gorm:"not null;default:0" json:"contratacoes"`
	Ativo        bool `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateContratanteData struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Senha    *string `json:"senha"`
}

func (c *Contratante) AtualizarInformacoes(data UpdateContratanteData) {
	if data.Nome != nil {
		c.Nome = *data.Nome
	}
	if data.Telefone != nil {
		c.Telefone = *data.Telefone
	}
	if data.Email != nil {
		c.Email = *data.Email
	}
	if data.Senha != nil {
		c.Senha = *data.Senha
	}
}

func (c *Contratante) Desativar() {
	c.Ativo = false
}

func (c *Contratante) AtivarConta() {
	c.Ativo = true
}
