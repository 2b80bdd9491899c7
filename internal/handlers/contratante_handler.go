package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DevHubCode/DevHub/internal/models"
	"github.com/DevHubCode/DevHub/internal/services/contratante"
)

type ContratanteHandler struct {
	Service *contratante.Service
}

func NewContratanteHandler(service *contratante.Service) *ContratanteHandler {
	return &ContratanteHandler{Service: service}
}

func (h *ContratanteHandler) Create(c *fiber.Ctx) error {
	var data contratante.CreateContratanteData
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
	if strings.TrimSpace(data.CNPJ) == "" {
		errs.Add("cnpj", "CNPJ é obrigatório")
	}
	if len(strings.TrimSpace(data.Senha)) < 6 {
		errs.Add("senha", "Senha deve ter no mínimo 6 caracteres")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	ct, err := h.Service.Register(c.Context(), data)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contratante cadastrado com sucesso",
		"data":    ct,
	})
}

func (h *ContratanteHandler) List(c *fiber.Ctx) error {
	contratantes, err := h.Service.ListActive(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    contratantes,
	})
}

func (h *ContratanteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ct, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    ct,
	})
}

func (h *ContratanteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var data models.UpdateContratanteData
	if err := c.BodyParser(&data); err != nil {
		return badBody(c)
	}

	ct, err := h.Service.Update(c.Context(), id, data)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contratante atualizado com sucesso",
		"data":    ct,
	})
}

func (h *ContratanteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Service.SoftDelete(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ContratanteHandler) Activate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Service.Activate(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ContratanteHandler) UploadFoto(c *fiber.Ctx) error {
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

func (h *ContratanteHandler) GetFoto(c *fiber.Ctx) error {
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
