package models

import (
	"time"

	"github.com/google/uuid"
)

// Especialidade e uma tag de habilidade pertencente a exatamente um freelancer.
// Criada em lote no cadastro de especialidades; nunca atualizada.
type Especialidade struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Descricao    string    `gorm:"type:varchar(120);not null" json:"descricao"`
	FreelancerID uuid.UUID `gorm:"type:uuid;index;not null" json:"freelancer_id"`

	CreatedAt time.Time `json:"created_at"`
}
