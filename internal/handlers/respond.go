package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/DevHubCode/DevHub/internal/apperr"
)

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Dados de requisição inválidos",
		"errors":  errs,
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Body da requisição inválido",
	})
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Id inválido")
	}
	return id, nil
}

// respondErr traduz os erros de dominio para status HTTP: colisao de
// unicidade vira 409 com o relatorio de campos, id inexistente vira 404 e
// falha de storage (tentativas esgotadas) vira 502.
func respondErr(c *fiber.Ctx, err error) error {
	var conflict *apperr.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": conflict.Report,
		})
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Registro não encontrado",
		})
	}
	var storageErr *apperr.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("storage failure: %v", storageErr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "Falha ao enviar arquivo ao storage",
		})
	}

	log.Printf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Erro interno no servidor",
	})
}
