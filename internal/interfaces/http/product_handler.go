package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/files"
)

// ProductHandler maneja as requisições HTTP do catálogo de produtos.
type ProductHandler struct {
	catalog *catalog.UseCase
	files   *files.UseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(cat *catalog.UseCase, fl *files.UseCase) *ProductHandler {
	return &ProductHandler{catalog: cat, files: fl}
}

// List GET /api/produtos?search=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.catalog.GetAll(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// NextCode GET /api/produtos/next-code
func (h *ProductHandler) NextCode(c *fiber.Ctx) error {
	code, err := h.catalog.NextCode()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"codigo": code})
}

// GetByID GET /api/produtos/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.catalog.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/produtos
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.catalog.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/produtos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.catalog.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/produtos/:id
//
// Remove o produto e, em cascata, todas as suas movimentações e a nota
// fiscal anexada.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// AttachInvoice POST /api/produtos/:id/nota-fiscal
//
// Multipart com o campo "nota_fiscal" (somente PDF). Substitui a nota
// anterior quando existe.
func (h *ProductHandler) AttachInvoice(c *fiber.Ctx) error {
	in, err := readMultipartFile(c, "nota_fiscal")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nenhum arquivo enviado"})
	}
	out, err := h.files.AttachInvoice(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ViewInvoice GET /api/produtos/:id/nota-fiscal/view
func (h *ProductHandler) ViewInvoice(c *fiber.Ctx) error {
	return h.serveInvoice(c, "inline")
}

// DownloadInvoice GET /api/produtos/:id/nota-fiscal/download
func (h *ProductHandler) DownloadInvoice(c *fiber.Ctx) error {
	return h.serveInvoice(c, "attachment")
}

func (h *ProductHandler) serveInvoice(c *fiber.Ctx, disposition string) error {
	file, err := h.files.GetInvoice(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, file.Filename))
	return c.Send(file.Data)
}

// readMultipartFile extrai um arquivo de um form multipart.
func readMultipartFile(c *fiber.Ctx, field string) (files.UploadInput, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return files.UploadInput{}, err
	}
	f, err := header.Open()
	if err != nil {
		return files.UploadInput{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return files.UploadInput{}, err
	}
	return files.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
