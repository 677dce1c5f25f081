package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/files"
)

// FileHandler maneja o arquivo de formulários de retirada assinados.
type FileHandler struct {
	uc *files.UseCase
}

// NewFileHandler constrói o handler.
func NewFileHandler(uc *files.UseCase) *FileHandler {
	return &FileHandler{uc: uc}
}

// List GET /api/formularios
func (h *FileHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upload POST /api/formularios
//
// Multipart com o campo "arquivo" (somente PDF) e os campos opcionais
// data_inicial e data_final (período coberto pelo formulário).
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	in, err := readMultipartFile(c, "arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nenhum arquivo enviado"})
	}
	in.InitialDate = parseOptionalDate(c.FormValue("data_inicial"))
	in.FinalDate = parseOptionalDate(c.FormValue("data_final"))

	out, err := h.uc.Upload(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// View GET /api/formularios/:id/view
func (h *FileHandler) View(c *fiber.Ctx) error {
	return h.serve(c, "inline")
}

// Download GET /api/formularios/:id
func (h *FileHandler) Download(c *fiber.Ctx) error {
	return h.serve(c, "attachment")
}

// Delete DELETE /api/formularios/:id
func (h *FileHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *FileHandler) serve(c *fiber.Ctx, disposition string) error {
	file, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, file.Filename))
	return c.Send(file.Data)
}

func parseOptionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
