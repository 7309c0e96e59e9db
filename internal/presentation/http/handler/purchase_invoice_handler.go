package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/request"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// PurchaseInvoiceHandler handles purchase invoice HTTP requests
type PurchaseInvoiceHandler struct {
	invoiceService *service.PurchaseInvoiceService
}

// NewPurchaseInvoiceHandler creates a new purchase invoice handler
func NewPurchaseInvoiceHandler(invoiceService *service.PurchaseInvoiceService) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{invoiceService: invoiceService}
}

func documentLines(lines []request.DocumentLineRequest) []service.DocumentLineInput {
	inputs := make([]service.DocumentLineInput, len(lines))
	for i, line := range lines {
		inputs[i] = service.DocumentLineInput{
			ItemID:          line.ItemID,
			ItemName:        line.ItemName,
			HSN:             line.HSN,
			Unit:            line.Unit,
			Quantity:        line.Quantity,
			UnitRate:        line.UnitRate,
			DiscountPercent: line.DiscountPercent,
			TaxDescriptor:   line.TaxDescriptor,
		}
	}
	return inputs
}

// Create handles creating a purchase invoice
func (h *PurchaseInvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.CreatePurchaseInvoice(c.Request.Context(), &service.CreatePurchaseInvoiceInput{
		UserID:            *userID,
		BranchID:          GetBranchIDFromContext(c),
		SupplierID:        req.SupplierID,
		Date:              req.Date,
		InvoiceNo:         req.InvoiceNo,
		AdditionalCharges: req.AdditionalCharges,
		OverallDiscount:   req.OverallDiscount,
		DiscountType:      req.DiscountType,
		AutoRoundOff:      req.AutoRoundOff,
		AmountPaid:        req.AmountPaid,
		Note:              req.Note,
		Lines:             documentLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase invoice created successfully", invoice)
}

// List handles listing purchase invoices
func (h *PurchaseInvoiceHandler) List(c *gin.Context) {
	var req request.PurchaseInvoiceFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	}
	params.Validate()

	input := &service.ListPurchaseInvoicesInput{
		Pagination: params,
		Search:     req.Search,
	}

	if req.Status != "" {
		if statusInt, err := strconv.Atoi(req.Status); err == nil {
			status := enum.InvoiceStatus(statusInt)
			input.Status = &status
		}
	}

	if req.SupplierID != "" {
		if supplierID, err := uuid.Parse(req.SupplierID); err == nil {
			input.SupplierID = &supplierID
		}
	}

	if req.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			input.StartDate = &startDate
		}
	}

	if req.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			input.EndDate = &endDate
		}
	}

	result, err := h.invoiceService.ListPurchaseInvoices(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase invoices retrieved successfully", result)
}

// Get handles getting a single purchase invoice
func (h *PurchaseInvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetPurchaseInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase invoice retrieved successfully", invoice)
}

// Update handles updating a purchase invoice
func (h *PurchaseInvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdatePurchaseInvoice(c.Request.Context(), &service.UpdatePurchaseInvoiceInput{
		ID:                id,
		UserID:            *userID,
		IsAdmin:           IsAdmin(c),
		BranchID:          GetBranchIDFromContext(c),
		SupplierID:        req.SupplierID,
		Date:              req.Date,
		AdditionalCharges: req.AdditionalCharges,
		OverallDiscount:   req.OverallDiscount,
		DiscountType:      req.DiscountType,
		AutoRoundOff:      req.AutoRoundOff,
		Note:              req.Note,
		Lines:             documentLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase invoice updated successfully", invoice)
}

// Delete handles deleting a purchase invoice
func (h *PurchaseInvoiceHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeletePurchaseInvoice(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Cancel handles cancelling a purchase invoice
func (h *PurchaseInvoiceHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.CancelPurchaseInvoice(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase invoice cancelled successfully", nil)
}

// GetUnpaid handles listing unpaid and partially paid invoices
func (h *PurchaseInvoiceHandler) GetUnpaid(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.invoiceService.GetUnpaidInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Unpaid invoices retrieved successfully", result)
}

// RecordPayment handles recording a payment against an invoice
func (h *PurchaseInvoiceHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.invoiceService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		InvoiceID:   invoiceID,
		UserID:      *userID,
		Date:        req.Date,
		Amount:      req.Amount,
		Mode:        req.Mode,
		ReferenceNo: req.ReferenceNo,
		Note:        req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// ListPayments handles listing an invoice's payments
func (h *PurchaseInvoiceHandler) ListPayments(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.invoiceService.ListPayments(c.Request.Context(), invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// DeletePayment handles deleting a payment
func (h *PurchaseInvoiceHandler) DeletePayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.invoiceService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
