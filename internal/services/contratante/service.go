package contratante

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/DevHubCode/DevHub/internal/apperr"
	"github.com/DevHubCode/DevHub/internal/models"
	"github.com/DevHubCode/DevHub/internal/storage"
	"github.com/DevHubCode/DevHub/internal/utils"
	"github.com/DevHubCode/DevHub/internal/validation"
)

const photoExt = ".jpg"

type Service struct {
	DB       *gorm.DB
	Uploader *storage.Uploader
}

func NewService(db *gorm.DB, uploader *storage.Uploader) *Service {
	return &Service{DB: db, Uploader: uploader}
}

type CreateContratanteData struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
}

// Register espelha o cadastro de freelancer: snapshot fresco das duas
// tabelas, validacao de unicidade, hash da senha e insert transacional.
func (s *Service) Register(ctx context.Context, data CreateContratanteData) (*models.Contratante, error) {
	freelancers, contratantes, err := snapshots(s.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	report := validation.Report(validation.Candidate{
		Email:    data.Email,
		Telefone: data.Telefone,
		CNPJ:     data.CNPJ,
	}, freelancers, contratantes)
	if !validation.Clear(report) {
		return nil, &apperr.ConflictError{Report: report}
	}

	hash, err := utils.HashPassword(data.Senha)
	if err != nil {
		return nil, err
	}

	c := models.Contratante{
		Nome:     data.Nome,
		CNPJ:     data.CNPJ,
		Telefone: data.Telefone,
		Email:    data.Email,
		Senha:    hash,
		Ativo:    true,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func snapshots(db *gorm.DB) ([]validation.FreelancerRecord, []validation.ContratanteRecord, error) {
	var freelancers []validation.FreelancerRecord
	if err := db.Model(&models.Freelancer{}).
		Select("email", "telefone", "cpf").
		Scan(&freelancers).Error; err != nil {
		return nil, nil, err
	}
	var contratantes []validation.ContratanteRecord
	if err := db.Model(&models.Contratante{}).
		Select("email", "telefone", "cnpj").
		Scan(&contratantes).Error; err != nil {
		return nil, nil, err
	}
	return freelancers, contratantes, nil
}

// ListContratante e o payload de listagem e detalhe.
type ListContratante struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	CNPJ         string    `json:"cnpj"`
	Telefone     string    `json:"telefone"`
	Email        string    `json:"email"`
	Imagem       []byte    `json:"imagem,omitempty"`
	Contratacoes int       `json:"contratacoes"`
}

func toList(c models.Contratante) ListContratante {
	return ListContratante{
		ID:           c.ID,
		Nome:         c.Nome,
		CNPJ:         c.CNPJ,
		Telefone:     c.Telefone,
		Email:        c.Email,
		Imagem:       c.Imagem,
		Contratacoes: c.Contratacoes,
	}
}

func (s *Service) ListActive(ctx context.Context) ([]ListContratante, error) {
	var contratantes []models.Contratante
	err := s.DB.WithContext(ctx).
		Where("ativo = ?", true).
		Order("nome").
		Find(&contratantes).Error
	if err != nil {
		return nil, err
	}

	out := make([]ListContratante, 0, len(contratantes))
	for _, c := range contratantes {
		out = append(out, toList(c))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ListContratante, error) {
	var c models.Contratante
	err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	dto := toList(c)
	return &dto, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, data models.UpdateContratanteData) (*models.Contratante, error) {
	var c models.Contratante
	err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if data.Senha != nil {
		hash, err := utils.HashPassword(*data.Senha)
		if err != nil {
			return nil, err
		}
		data.Senha = &hash
	}
	c.AtualizarInformacoes(data)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.setAtivo(ctx, id, false)
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	return s.setAtivo(ctx, id, true)
}

func (s *Service) setAtivo(ctx context.Context, id uuid.UUID, ativo bool) error {
	var c models.Contratante
	err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}

	if ativo {
		c.AtivarConta()
	} else {
		c.Desativar()
	}
	return s.DB.WithContext(ctx).Model(&c).Update("ativo", c.Ativo).Error
}

// UpdatePhoto segue a mesma politica do freelancer: escrita local
// autoritativa, replica remota com retry limitado, sucesso so com as duas
// pernas OK e sem rollback local em falha remota.
func (s *Service) UpdatePhoto(ctx context.Context, id uuid.UUID, foto []byte, contentType string) error {
	res := s.DB.WithContext(ctx).
		Model(&models.Contratante{}).
		Where("id = ?", id).
		Update("imagem", foto)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return apperr.ErrNotFound
	}

	var c models.Contratante
	if err := s.DB.WithContext(ctx).Select("id", "nome").First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	key := storage.PhotoKey("contratantes", c.ID, c.Nome, photoExt)
	etag, attempts, uploadErr := s.Uploader.Upload(ctx, key, foto, contentType)

	tags, _ := json.Marshal(storage.PublicTags)
	rec := models.UploadRecord{
		OwnerID:   c.ID,
		Key:       key,
		Etag:      etag,
		Tags:      datatypes.JSON(tags),
		Attempts:  attempts,
		Succeeded: uploadErr == nil,
	}
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		log.Printf("falha ao registrar upload %s: %v", key, err)
	}
	return uploadErr
}

func (s *Service) GetFoto(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var c models.Contratante
	err := s.DB.WithContext(ctx).Select("id", "imagem").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c.Imagem, nil
}
