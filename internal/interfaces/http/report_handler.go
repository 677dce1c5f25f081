package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/report"
)

// ReportHandler maneja as requisições HTTP de relatórios.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF GET /api/reports/estoque/pdf
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	file, err := h.uc.GenerateStockPDF()
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// HistoryPDF GET /api/reports/historico/pdf
//
// Aceita os mesmos filtros da listagem de movimentações.
func (h *ReportHandler) HistoryPDF(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	file, err := h.uc.GenerateHistoryPDF(in)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// Excel GET /api/reports/excel
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	file, err := h.uc.GenerateExcel()
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *report.File) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}
