package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UploadRecord registra cada envio de foto ao object store, inclusive os que
// esgotaram as tentativas. O registro e best-effort e nao participa da
// transacao do upload.
type UploadRecord struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`

	Key       string         `gorm:"type:text;not null" json:"key"`
	Etag      string         `gorm:"type:varchar(80)" json:"etag"`
	Tags      datatypes.JSON `json:"tags"`
	Attempts  int            `gorm:"not null" json:"attempts"`
	Succeeded bool           `gorm:"not null" json:"succeeded"`

	CreatedAt time.Time `json:"created_at"`
}
