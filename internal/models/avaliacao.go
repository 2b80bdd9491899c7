package models

import (
	"time"

	"github.com/google/uuid"
)

type Avaliacao struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FreelancerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"freelancer_id"`
	ContratanteID uuid.UUID `gorm:"type:uuid;index;not null" json:"contratante_id"`

	Nota       int    `gorm:"not null" json:"nota"` // 1-5
	Comentario string `gorm:"type:text" json:"comentario"`

	CreatedAt time.Time `json:"created_at"`

	Freelancer  *Freelancer  `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	Contratante *Contratante `gorm:"foreignKey:ContratanteID" json:"contratante,omitempty"`
}
