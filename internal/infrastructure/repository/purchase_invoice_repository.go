package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
	"gorm.io/gorm"
)

type purchaseInvoiceRepository struct {
	db *gorm.DB
}

// NewPurchaseInvoiceRepository creates a new purchase invoice repository
func NewPurchaseInvoiceRepository(db *gorm.DB) domainRepo.PurchaseInvoiceRepository {
	return &purchaseInvoiceRepository{db: db}
}

func (r *purchaseInvoiceRepository) Create(ctx context.Context, invoice *entity.PurchaseInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *purchaseInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error) {
	var invoice entity.PurchaseInvoice
	err := r.db.WithContext(ctx).
		Scopes(BranchScope(ctx)).
		Preload("Supplier").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

// GetByInvoiceNo stays unscoped: invoice numbers are unique across the
// company, so the duplicate check must see every branch.
func (r *purchaseInvoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.PurchaseInvoice, error) {
	var invoice entity.PurchaseInvoice
	err := r.db.WithContext(ctx).First(&invoice, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *purchaseInvoiceRepository) Update(ctx context.Context, invoice *entity.PurchaseInvoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *purchaseInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PurchaseInvoice{}, "id = ?", id).Error
}

func (r *purchaseInvoiceRepository) List(ctx context.Context, params *domainRepo.PurchaseInvoiceFilterParams) ([]entity.PurchaseInvoice, int64, error) {
	var invoices []entity.PurchaseInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseInvoice{}).Scopes(BranchScope(ctx))

	if params.Search != "" {
		query = query.Joins("LEFT JOIN suppliers ON suppliers.id = purchase_invoices.supplier_id").
			Where("purchase_invoices.invoice_no ILIKE ? OR suppliers.name ILIKE ? OR suppliers.firm_name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("purchase_invoices.status = ?", *params.Status)
	}

	if params.SupplierID != nil {
		query = query.Where("purchase_invoices.supplier_id = ?", *params.SupplierID)
	}

	if params.BranchID != nil {
		query = query.Where("purchase_invoices.branch_id = ?", *params.BranchID)
	}

	if params.StartDate != nil {
		query = query.Where("purchase_invoices.date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("purchase_invoices.date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "purchase_invoices.created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = "purchase_invoices." + params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Order(sortBy + " " + sortOrder).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *purchaseInvoiceRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error) {
	var invoice entity.PurchaseInvoice
	err := r.db.WithContext(ctx).
		Scopes(BranchScope(ctx)).
		Preload("Supplier").
		Preload("Branch").
		Preload("Lines").
		Preload("Payments").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *purchaseInvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&entity.PurchaseInvoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *purchaseInvoiceRepository) GetUnpaid(ctx context.Context, params *pagination.PaginationParams) ([]entity.PurchaseInvoice, int64, error) {
	var invoices []entity.PurchaseInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseInvoice{}).
		Scopes(BranchScope(ctx)).
		Where("status IN ?", []enum.InvoiceStatus{enum.InvoiceStatusUnpaid, enum.InvoiceStatusPartial}).
		Where("balance_due > 0")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Supplier").
		Order("date ASC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *purchaseInvoiceRepository) GetNextInvoiceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PurchaseInvoice{}).Count(&count).Error
	return int(count) + 1, err
}

type purchaseInvoiceLineRepository struct {
	db *gorm.DB
}

// NewPurchaseInvoiceLineRepository creates a new purchase invoice line repository
func NewPurchaseInvoiceLineRepository(db *gorm.DB) domainRepo.PurchaseInvoiceLineRepository {
	return &purchaseInvoiceLineRepository{db: db}
}

func (r *purchaseInvoiceLineRepository) CreateBatch(ctx context.Context, lines []entity.PurchaseInvoiceLine) error {
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *purchaseInvoiceLineRepository) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.PurchaseInvoiceLine, error) {
	var lines []entity.PurchaseInvoiceLine
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Find(&lines).Error
	return lines, err
}

func (r *purchaseInvoiceLineRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PurchaseInvoiceLine{}, "invoice_id = ?", invoiceID).Error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("date ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Payment{}, "id = ?", id).Error
}

func (r *paymentRepository) SumByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Where("invoice_id = ?", invoiceID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) List(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payment{})

	if params.InvoiceID != nil {
		query = query.Where("invoice_id = ?", *params.InvoiceID)
	}

	if params.Mode != nil {
		query = query.Where("mode = ?", *params.Mode)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC").
		Find(&payments).Error

	return payments, total, err
}
