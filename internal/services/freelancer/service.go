package freelancer

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
	"github.com/DevHubCode/DevHub/internal/services/avaliacao"
	"github.com/DevHubCode/DevHub/internal/storage"
	"github.com/DevHubCode/DevHub/internal/utils"
	"github.com/DevHubCode/DevHub/internal/validation"
)

// photoExt e a extensao usada nas fotos de perfil de freelancer no object
// store.
const photoExt = ".webp"

type Service struct {
	DB         *gorm.DB
	Uploader   *storage.Uploader
	Avaliacoes *avaliacao.Service
}

func NewService(db *gorm.DB, uploader *storage.Uploader, avaliacoes *avaliacao.Service) *Service {
	return &Service{DB: db, Uploader: uploader, Avaliacoes: avaliacoes}
}

type CreateFreelancerData struct {
	Nome        string        `json:"nome"`
	CPF         string        `json:"cpf"`
	Telefone    string        `json:"telefone"`
	Email       string        `json:"email"`
	Senha       string        `json:"senha"`
	Funcao      models.Funcao `json:"funcao"`
	ValorHora   float64       `json:"valor_hora"`
	Descricao   string        `json:"descricao"`
	Senioridade string        `json:"senioridade"`
}

// Register valida unicidade contra um snapshot fresco das duas tabelas e
// insere o freelancer em uma transacao. Colisao vira ConflictError com o
// relatorio de campos; nada e persistido nesse caso.
//
// O snapshot nao e protegido por lock nem constraint: dois cadastros
// concorrentes com o mesmo e-mail podem passar. O validador e um fast-fail
// best-effort, como no sistema original.
func (s *Service) Register(ctx context.Context, data CreateFreelancerData) (*models.Freelancer, error) {
	freelancers, contratantes, err := snapshots(s.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	report := validation.Report(validation.Candidate{
		Email:    data.Email,
		Telefone: data.Telefone,
		CPF:      data.CPF,
	}, freelancers, contratantes)
	if !validation.Clear(report) {
		return nil, &apperr.ConflictError{Report: report}
	}

	hash, err := utils.HashPassword(data.Senha)
	if err != nil {
		return nil, err
	}

	f := models.Freelancer{
		Nome:        data.Nome,
		CPF:         data.CPF,
		Telefone:    data.Telefone,
		Email:       data.Email,
		Senha:       hash,
		Funcao:      data.Funcao,
		ValorHora:   data.ValorHora,
		Descricao:   data.Descricao,
		Senioridade: data.Senioridade,
		Ativo:       true,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&f).Error
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
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

// ListaFreelancer e o payload da listagem publica.
type ListaFreelancer struct {
	ID             uuid.UUID              `json:"id"`
	Nome           string                 `json:"nome"`
	Imagem         []byte                 `json:"imagem,omitempty"`
	Funcao         models.Funcao          `json:"funcao"`
	Especialidades []models.Especialidade `json:"especialidades"`
	Senioridade    string                 `json:"senioridade"`
	ValorHora      float64                `json:"valor_hora"`
	Media          *float64               `json:"media"`
}

// PerfilFreelancer e o payload de detalhe/busca/comparacao.
type PerfilFreelancer struct {
	ID             uuid.UUID              `json:"id"`
	Nome           string                 `json:"nome"`
	Email          string                 `json:"email"`
	Funcao         models.Funcao          `json:"funcao"`
	Especialidades []models.Especialidade `json:"especialidades"`
	ValorHora      float64                `json:"valor_hora"`
	Senioridade    string                 `json:"senioridade"`
	Descricao      string                 `json:"descricao"`
	Telefone       string                 `json:"telefone"`
	Imagem         []byte                 `json:"imagem,omitempty"`
	Media          *float64               `json:"media"`
}

// ListActive lista os freelancers ativos enriquecidos com a media de notas.
// Contas desativadas ficam de fora.
func (s *Service) ListActive(ctx context.Context) ([]ListaFreelancer, error) {
	var freelancers []models.Freelancer
	err := s.DB.WithContext(ctx).
		Preload("Especialidades").
		Where("ativo = ?", true).
		Order("nome").
		Find(&freelancers).Error
	if err != nil {
		return nil, err
	}

	out := make([]ListaFreelancer, 0, len(freelancers))
	for _, f := range freelancers {
		media, err := s.Avaliacoes.Media(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ListaFreelancer{
			ID:             f.ID,
			Nome:           f.Nome,
			Imagem:         f.Imagem,
			Funcao:         f.Funcao,
			Especialidades: f.Especialidades,
			Senioridade:    f.Senioridade,
			ValorHora:      f.ValorHora,
			Media:          media,
		})
	}
	return out, nil
}

func (s *Service) perfil(ctx context.Context, f models.Freelancer) (PerfilFreelancer, error) {
	media, err := s.Avaliacoes.Media(ctx, f.ID)
	if err != nil {
		return PerfilFreelancer{}, err
	}
	return PerfilFreelancer{
		ID:             f.ID,
		Nome:           f.Nome,
		Email:          f.Email,
		Funcao:         f.Funcao,
		Especialidades: f.Especialidades,
		ValorHora:      f.ValorHora,
		Senioridade:    f.Senioridade,
		Descricao:      f.Descricao,
		Telefone:       f.Telefone,
		Imagem:         f.Imagem,
		Media:          media,
	}, nil
}

// GetByID devolve o perfil completo, inclusive de contas desativadas
// (soft-delete nao esconde consulta direta por id).
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*PerfilFreelancer, error) {
	var f models.Freelancer
	err := s.DB.WithContext(ctx).Preload("Especialidades").First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	perfil, err := s.perfil(ctx, f)
	if err != nil {
		return nil, err
	}
	return &perfil, nil
}

// Update aplica um patch parcial. Campos nil ficam intactos; senha presente e
// re-hasheada antes de gravar. Unicidade nao e revalidada aqui (paridade com
// o comportamento original, ver DESIGN.md).
func (s *Service) Update(ctx context.Context, id uuid.UUID, data models.UpdateFreelancerData) (*models.Freelancer, error) {
	var f models.Freelancer
	err := s.DB.WithContext(ctx).First(&f, "id = ?", id).Error
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
	f.AtualizarInformacoes(data)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&f).Error
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// SoftDelete marca a conta como inativa; o registro continua consultavel por
// id e some das listagens.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.setAtivo(ctx, id, false)
}

// Activate reativa uma conta desativada.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	return s.setAtivo(ctx, id, true)
}

func (s *Service) setAtivo(ctx context.Context, id uuid.UUID, ativo bool) error {
	var f models.Freelancer
	err := s.DB.WithContext(ctx).First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}

	if ativo {
		f.AtivarConta()
	} else {
		f.Desativar()
	}
	return s.DB.WithContext(ctx).Model(&f).Update("ativo", f.Ativo).Error
}

// RegisterEspecialidades cria as tags de habilidade em lote. Passo
// deliberadamente separado e nao atomico em relacao ao cadastro do
// freelancer.
func (s *Service) RegisterEspecialidades(ctx context.Context, id uuid.UUID, descricoes []string) ([]models.Especialidade, error) {
	var f models.Freelancer
	err := s.DB.WithContext(ctx).Select("id").First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	especialidades := make([]models.Especialidade, 0, len(descricoes))
	for _, descricao := range descricoes {
		especialidades = append(especialidades, models.Especialidade{
			Descricao:    descricao,
			FreelancerID: f.ID,
		})
	}
	if len(especialidades) == 0 {
		return especialidades, nil
	}
	if err := s.DB.WithContext(ctx).Create(&especialidades).Error; err != nil {
		return nil, err
	}
	return especialidades, nil
}

// UpdatePhoto grava a foto na linha do freelancer (escrita autoritativa) e
// replica o payload no object store com ate 3 tentativas. Falha remota apos
// esgotar as tentativas vira StorageError, mas a escrita local permanece:
// local e remoto sao eventualmente consistentes, nao transacionais.
//
// Sucesso exige as duas pernas (linha atualizada E upload remoto OK) — a
// politica foi unificada para as duas variantes de conta.
func (s *Service) UpdatePhoto(ctx context.Context, id uuid.UUID, foto []byte, contentType string) error {
	res := s.DB.WithContext(ctx).
		Model(&models.Freelancer{}).
		Where("id = ?", id).
		Update("imagem", foto)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return apperr.ErrNotFound
	}

	var f models.Freelancer
	if err := s.DB.WithContext(ctx).Select("id", "nome").First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	key := storage.PhotoKey("freelancers", f.ID, f.Nome, photoExt)
	etag, attempts, uploadErr := s.Uploader.Upload(ctx, key, foto, contentType)
	s.auditUpload(ctx, f.ID, key, etag, attempts, uploadErr == nil)
	return uploadErr
}

func (s *Service) auditUpload(ctx context.Context, ownerID uuid.UUID, key, etag string, attempts int, succeeded bool) {
	tags, _ := json.Marshal(storage.PublicTags)
	rec := models.UploadRecord{
		OwnerID:   ownerID,
		Key:       key,
		Etag:      etag,
		Tags:      datatypes.JSON(tags),
		Attempts:  attempts,
		Succeeded: succeeded,
	}
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		log.Printf("falha ao registrar upload %s: %v", key, err)
	}
}

// GetFoto devolve os bytes da foto armazenada; nil quando nenhuma foto foi
// enviada.
func (s *Service) GetFoto(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var f models.Freelancer
	err := s.DB.WithContext(ctx).Select("id", "imagem").First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f.Imagem, nil
}

// Search busca freelancers ativos por nome, funcao ou descricao.
func (s *Service) Search(ctx context.Context, pesquisa string) ([]PerfilFreelancer, error) {
	like := "%" + pesquisa + "%"
	var freelancers []models.Freelancer
	err := s.DB.WithContext(ctx).
		Preload("Especialidades").
		Where("ativo = ?", true).
		Where("nome ILIKE ? OR funcao ILIKE ? OR descricao ILIKE ?", like, like, like).
		Order("nome").
		Find(&freelancers).Error
	if err != nil {
		return nil, err
	}
	return s.perfis(ctx, freelancers)
}

// Compare devolve os freelancers ativos que possuem ao menos uma das
// especialidades pedidas, mais o proprio freelancer de referencia.
func (s *Service) Compare(ctx context.Context, especialidades []string, compareTo uuid.UUID) ([]PerfilFreelancer, error) {
	sub := s.DB.Model(&models.Especialidade{}).
		Select("freelancer_id").
		Where("descricao IN ?", especialidades)

	var freelancers []models.Freelancer
	err := s.DB.WithContext(ctx).
		Preload("Especialidades").
		Where("ativo = ?", true).
		Where("id IN (?) OR id = ?", sub, compareTo).
		Order("nome").
		Find(&freelancers).Error
	if err != nil {
		return nil, err
	}
	return s.perfis(ctx, freelancers)
}

func (s *Service) perfis(ctx context.Context, freelancers []models.Freelancer) ([]PerfilFreelancer, error) {
	out := make([]PerfilFreelancer, 0, len(freelancers))
	for _, f := range freelancers {
		perfil, err := s.perfil(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, perfil)
	}
	return out, nil
}
