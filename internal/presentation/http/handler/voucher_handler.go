package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
)

// VoucherHandler serves printable voucher payloads for stored documents
type VoucherHandler struct {
	voucherService *service.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// PurchaseInvoice handles fetching a purchase invoice voucher
func (h *VoucherHandler) PurchaseInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	voucher, err := h.voucherService.PurchaseInvoiceVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher generated successfully", voucher)
}

// Quotation handles fetching a quotation voucher
func (h *VoucherHandler) Quotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	voucher, err := h.voucherService.QuotationVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher generated successfully", voucher)
}

// CreditNote handles fetching a credit note voucher
func (h *VoucherHandler) CreditNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid credit note ID")
		return
	}

	voucher, err := h.voucherService.CreditNoteVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher generated successfully", voucher)
}

// Expense handles fetching an expense voucher print payload
func (h *VoucherHandler) Expense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := h.voucherService.ExpenseVoucherPrint(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher generated successfully", voucher)
}
