package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/DevHubCode/DevHub/internal/middleware"
	"github.com/DevHubCode/DevHub/internal/models"
	"github.com/DevHubCode/DevHub/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Expires   int
}

type LoginReq struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login autentica contra as duas tabelas: primeiro freelancer, depois
// contratante. Conta desativada nao loga.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	senha := strings.TrimSpace(req.Senha)

	errs := FieldErrors{}
	if email == "" {
		errs.Add("email", "E-mail é obrigatório")
	}
	if senha == "" {
		errs.Add("senha", "Senha é obrigatória")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	id, nome, hash, role, ativo, err := h.findAccount(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return h.loginFail(c)
		}
		return respondErr(c, err)
	}

	if !ativo {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Conta desativada",
		})
	}
	if !utils.CheckPassword(hash, senha) {
		return h.loginFail(c)
	}

	token, err := utils.SignJWT(h.JWTSecret, id, role, h.Expires)
	if err != nil {
		return respondErr(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login realizado com sucesso",
		"data": fiber.Map{
			"id":    id,
			"nome":  nome,
			"email": email,
			"role":  role,
			"token": token,
		},
	})
}

func (h *AuthHandler) findAccount(email string) (id, nome, hash, role string, ativo bool, err error) {
	var f models.Freelancer
	err = h.DB.Where("LOWER(email) = ?", email).First(&f).Error
	if err == nil {
		return f.ID.String(), f.Nome, f.Senha, "freelancer", f.Ativo, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", "", "", false, err
	}

	var ct models.Contratante
	err = h.DB.Where("LOWER(email) = ?", email).First(&ct).Error
	if err != nil {
		return "", "", "", "", false, err
	}
	return ct.ID.String(), ct.Nome, ct.Senha, "contratante", ct.Ativo, nil
}

func (h *AuthHandler) loginFail(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "E-mail ou senha incorretos",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout realizado com sucesso",
	})
}
