package avaliacao

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DevHubCode/DevHub/internal/apperr"
	"github.com/DevHubCode/DevHub/internal/cache"
	"github.com/DevHubCode/DevHub/internal/models"
)

var ErrNotaInvalida = errors.New("nota deve estar entre 1 e 5")

type Service struct {
	DB    *gorm.DB
	Cache cache.RatingCache
}

func NewService(db *gorm.DB, c cache.RatingCache) *Service {
	return &Service{DB: db, Cache: c}
}

func (s *Service) Criar(ctx context.Context, freelancerID, contratanteID uuid.UUID, nota int, comentario string) (*models.Avaliacao, error) {
	if nota < 1 || nota > 5 {
		return nil, ErrNotaInvalida
	}

	var freelancer models.Freelancer
	if err := s.DB.WithContext(ctx).Select("id").First(&freelancer, "id = ?", freelancerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	av := models.Avaliacao{
		FreelancerID:  freelancerID,
		ContratanteID: contratanteID,
		Nota:          nota,
		Comentario:    comentario,
	}
	if err := s.DB.WithContext(ctx).Create(&av).Error; err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(ctx, freelancerID); err != nil {
		log.Printf("falha ao invalidar cache de media do freelancer %s: %v", freelancerID, err)
	}
	return &av, nil
}

// Media devolve a media das notas do freelancer, ou nil quando ele ainda nao
// tem avaliacoes. O agregado fica cacheado ate a proxima avaliacao.
func (s *Service) Media(ctx context.Context, freelancerID uuid.UUID) (*float64, error) {
	if media, hit, err := s.Cache.GetMedia(ctx, freelancerID); err == nil && hit {
		return media, nil
	} else if err != nil {
		log.Printf("falha ao ler cache de media do freelancer %s: %v", freelancerID, err)
	}

	var avg sql.NullFloat64
	err := s.DB.WithContext(ctx).
		Model(&models.Avaliacao{}).
		Where("freelancer_id = ?", freelancerID).
		Select("AVG(nota)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	var media *float64
	if avg.Valid {
		media = &avg.Float64
	}

	if err := s.Cache.SetMedia(ctx, freelancerID, media); err != nil {
		log.Printf("falha ao gravar cache de media do freelancer %s: %v", freelancerID, err)
	}
	return media, nil
}
