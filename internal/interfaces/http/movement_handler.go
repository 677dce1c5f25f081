package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/files"
	"github.com/scges/scges-api/internal/application/ledger"
)

// MovementHandler maneja as requisições HTTP do ledger de movimentações.
type MovementHandler struct {
	ledger *ledger.UseCase
	files  *files.UseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(led *ledger.UseCase, fl *files.UseCase) *MovementHandler {
	return &MovementHandler{ledger: led, files: fl}
}

// RecordEntry POST /api/entrada
//
// Aceita JSON ou multipart (campo opcional "nota_fiscal" com o PDF da
// nota, arquivado antes do lançamento).
func (h *MovementHandler) RecordEntry(c *fiber.Ctx) error {
	in, err := h.parseEntry(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.ledger.RecordEntry(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordExit POST /api/saida
func (h *MovementHandler) RecordExit(c *fiber.Ctx) error {
	var in dto.RecordExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.ledger.RecordExit(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/movimentacoes
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.ledger.Query(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MovementHandler) parseEntry(c *fiber.Ctx) (dto.RecordEntryRequest, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		var in dto.RecordEntryRequest
		err := c.BodyParser(&in)
		return in, err
	}

	quantity, err := strconv.ParseInt(c.FormValue("quantidade"), 10, 64)
	if err != nil {
		return dto.RecordEntryRequest{}, err
	}
	in := dto.RecordEntryRequest{
		Product:  c.FormValue("produto"),
		Quantity: quantity,
		Date:     c.FormValue("data"),
		Staff:    c.FormValue("servidor_almoxarifado"),
		Notes:    c.FormValue("observacoes"),
		Unit:     c.FormValue("unidade"),
	}

	// Nota fiscal opcional: arquiva o blob antes de lançar a entrada.
	if upload, err := readMultipartFile(c, "nota_fiscal"); err == nil {
		info, err := h.files.Upload(upload)
		if err != nil {
			return dto.RecordEntryRequest{}, err
		}
		in.InvoiceFileID = info.ID
		in.InvoiceFilename = info.Filename
	}
	return in, nil
}
