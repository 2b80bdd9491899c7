package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/DevHubCode/DevHub/internal/models"
	"github.com/DevHubCode/DevHub/internal/services/avaliacao"
	"github.com/DevHubCode/DevHub/internal/services/freelancer"
)

type FreelancerHandler struct {
	Service    *freelancer.Service
	Avaliacoes *avaliacao.Service
}

func NewFreelancerHandler(service *freelancer.Service, avaliacoes *avaliacao.Service) *FreelancerHandler {
	return &FreelancerHandler{Service: service, Avaliacoes: avaliacoes}
}

func (h *FreelancerHandler) Create(c *fiber.Ctx) error {
	var data freelancer.CreateFreelancerData
	if err := c.BodyParser(&data); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(data.Nome) == "" {
		errs.Add("nome", "Nome é obrigatório")
	}
	if strings.TrimSpace(data.Email) == "" || !strings.Contains(data.Email, "@") {
		errs.Add("email", "E-mail inválido")
	}
	if strings.TrimSpace(data.Telefone) == "" {
		errs.Add("telefone", "Telefone é obrigatório")
	}
	if strings.TrimSpace(data.CPF) == "" {
		errs.Add("cpf", "CPF é obrigatório")
	}
	if len(strings.TrimSpace(data.Senha)) < 6 {
		errs.Add("senha", "Senha deve ter no mínimo 6 caracteres")
	}
	if data.ValorHora < 0 {
		errs.Add("valor_hora", "Valor hora não pode ser negativo")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	f, err := h.Service.Register(c.Context(), data)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Freelancer cadastrado com sucesso",
		"data":    f,
	})
}

func (h *FreelancerHandler) List(c *fiber.Ctx) error {
	freelancers, err := h.Service.ListActive(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    freelancers,
	})
}

func (h *FreelancerHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		errs := FieldErrors{}
		errs.Add("q", "Termo de pesquisa é obrigatório")
		return validationFail(c, errs)
	}

	freelancers, err := h.Service.Search(c.Context(), q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    freelancers,
	})
}

type CompareReq struct {
	Especialidades []string  `json:"especialidades"`
	CompareTo      uuid.UUID `json:"compare_to"`
}

func (h *FreelancerHandler) Compare(c *fiber.Ctx) error {
	var req CompareReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if len(req.Especialidades) == 0 {
		errs := FieldErrors{}
		errs.Add("especialidades", "Informe ao menos uma especialidade")
		return validationFail(c, errs)
	}

	freelancers, err := h.Service.Compare(c.Context(), req.Especialidades, req.CompareTo)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    freelancers,
	})
}

func (h *FreelancerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	perfil, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    perfil,
	})
}

func (h *FreelancerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var data models.UpdateFreelancerData
	if err := c.BodyParser(&data); err != nil {
		return badBody(c)
	}

	f, err := h.Service.Update(c.Context(), id, data)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Freelancer atualizado com sucesso",
		"data":    f,
	})
}

func (h *FreelancerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Service.SoftDelete(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FreelancerHandler) Activate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Service.Activate(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FreelancerHandler) CreateEspecialidades(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var descricoes []string
	if err := c.BodyParser(&descricoes); err != nil {
		return badBody(c)
	}

	especialidades, err := h.Service.RegisterEspecialidades(c.Context(), id, descricoes)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    especialidades,
	})
}

func (h *FreelancerHandler) UploadFoto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Arquivo de foto não encontrado",
		})
	}

	src, err := file.Open()
	if err != nil {
		return respondErr(c, err)
	}
	defer src.Close()

	foto, err := io.ReadAll(src)
	if err != nil {
		return respondErr(c, err)
	}

	contentType := file.Header.Get("Content-Type")
	if err := h.Service.UpdatePhoto(c.Context(), id, foto, contentType); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Foto atualizada com sucesso",
	})
}

func (h *FreelancerHandler) GetFoto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	foto, err := h.Service.GetFoto(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	if len(foto) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Send(foto)
}

type CreateAvaliacaoReq struct {
	Nota       int    `json:"nota"`
	Comentario string `json:"comentario"`
}

func (h *FreelancerHandler) CreateAvaliacao(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rawUID, _ := c.Locals("userId").(string)
	contratanteID, err := uuid.Parse(rawUID)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req CreateAvaliacaoReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if req.Nota < 1 || req.Nota > 5 {
		errs := FieldErrors{}
		errs.Add("nota", "Nota deve estar entre 1 e 5")
		return validationFail(c, errs)
	}

	av, err := h.Avaliacoes.Criar(c.Context(), id, contratanteID, req.Nota, req.Comentario)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    av,
	})
}
