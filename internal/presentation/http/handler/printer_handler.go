package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/request"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test voucher to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	voucher, err := h.printerService.TestPrint()
	if err != nil {
		// Return the voucher data anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"voucher": voucher,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"voucher": voucher,
	})
}

// PrintVoucher prints the voucher for a document.
func (h *PrinterHandler) PrintVoucher(c *gin.Context) {
	var req request.PrintVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	ctx := c.Request.Context()

	var print func(context.Context, uuid.UUID) (*entity.Voucher, error)
	switch req.Type {
	case "purchase_invoice":
		print = h.printerService.PrintPurchaseInvoice
	case "quotation":
		print = h.printerService.PrintQuotation
	case "credit_note":
		print = h.printerService.PrintCreditNote
	case "expense":
		print = h.printerService.PrintExpenseVoucher
	default:
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid voucher type. Use 'purchase_invoice', 'quotation', 'credit_note' or 'expense'")
		return
	}

	voucher, err := print(ctx, id)
	if err != nil {
		// If the voucher was built but printing failed, return it with a warning
		if voucher != nil {
			response.OK(c, "Voucher generated but printing failed", gin.H{
				"voucher": voucher,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher printed successfully", gin.H{
		"voucher": voucher,
	})
}
