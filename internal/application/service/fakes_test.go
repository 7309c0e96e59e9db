package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests. They mirror the
// behavior the GORM implementations provide: nil for a missing row, generated
// IDs on create, copies on read so tests cannot mutate stored state.

type fakeItemRepo struct {
	items map[uuid.UUID]entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]entity.Item)}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) CreateBatch(ctx context.Context, items []entity.Item) error {
	for i := range items {
		if err := r.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	if item, ok := r.items[id]; ok {
		out := item
		return &out, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Code == code {
			out := item
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	var out []entity.Item
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) Search(ctx context.Context, term string, limit int) ([]entity.Item, error) {
	var out []entity.Item
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(term)) {
			out = append(out, item)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		out := s
		return &out, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Email != nil && *s.Email == email {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if c, ok := r.customers[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email != nil && *c.Email == email {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

type fakeInvoiceLineRepo struct {
	lines map[uuid.UUID][]entity.PurchaseInvoiceLine
}

func newFakeInvoiceLineRepo() *fakeInvoiceLineRepo {
	return &fakeInvoiceLineRepo{lines: make(map[uuid.UUID][]entity.PurchaseInvoiceLine)}
}

func (r *fakeInvoiceLineRepo) CreateBatch(ctx context.Context, lines []entity.PurchaseInvoiceLine) error {
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		r.lines[lines[i].InvoiceID] = append(r.lines[lines[i].InvoiceID], lines[i])
	}
	return nil
}

func (r *fakeInvoiceLineRepo) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.PurchaseInvoiceLine, error) {
	return r.lines[invoiceID], nil
}

func (r *fakeInvoiceLineRepo) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	delete(r.lines, invoiceID)
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]entity.PurchaseInvoice
	lineRepo *fakeInvoiceLineRepo
	nextNum  int
}

func newFakeInvoiceRepo(lineRepo *fakeInvoiceLineRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[uuid.UUID]entity.PurchaseInvoice),
		lineRepo: lineRepo,
		nextNum:  1,
	}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.PurchaseInvoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = *invoice
	r.nextNum++
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error) {
	if inv, ok := r.invoices[id]; ok {
		out := inv
		return &out, nil
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.PurchaseInvoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNo == invoiceNo {
			out := inv
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.PurchaseInvoice) error {
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *domainRepo.PurchaseInvoiceFilterParams) ([]entity.PurchaseInvoice, int64, error) {
	var out []entity.PurchaseInvoice
	for _, inv := range r.invoices {
		if params.Status != nil && inv.Status != *params.Status {
			continue
		}
		out = append(out, inv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error) {
	inv, err := r.GetByID(ctx, id)
	if err != nil || inv == nil {
		return inv, err
	}
	inv.Lines, _ = r.lineRepo.GetByInvoiceID(ctx, id)
	return inv, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	inv, ok := r.invoices[id]
	if !ok {
		return nil
	}
	inv.Status = status
	r.invoices[id] = inv
	return nil
}

func (r *fakeInvoiceRepo) GetUnpaid(ctx context.Context, params *pagination.PaginationParams) ([]entity.PurchaseInvoice, int64, error) {
	var out []entity.PurchaseInvoice
	for _, inv := range r.invoices {
		if inv.BalanceDue > 0 && inv.Status != enum.InvoiceStatusCancelled {
			out = append(out, inv)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) GetNextInvoiceNumber(ctx context.Context) (int, error) {
	return r.nextNum, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]entity.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments[payment.ID] = *payment
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if p, ok := r.payments[id]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (r *fakePaymentRepo) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) SumByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (float64, error) {
	var sum float64
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			sum += p.Amount
		}
	}
	return sum, nil
}

func (r *fakePaymentRepo) List(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if params.InvoiceID != nil && p.InvoiceID != *params.InvoiceID {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

type fakeQuotationLineRepo struct {
	lines map[uuid.UUID][]entity.QuotationLine
}

func newFakeQuotationLineRepo() *fakeQuotationLineRepo {
	return &fakeQuotationLineRepo{lines: make(map[uuid.UUID][]entity.QuotationLine)}
}

func (r *fakeQuotationLineRepo) CreateBatch(ctx context.Context, lines []entity.QuotationLine) error {
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		r.lines[lines[i].QuotationID] = append(r.lines[lines[i].QuotationID], lines[i])
	}
	return nil
}

func (r *fakeQuotationLineRepo) GetByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]entity.QuotationLine, error) {
	return r.lines[quotationID], nil
}

func (r *fakeQuotationLineRepo) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	delete(r.lines, quotationID)
	return nil
}

type fakeQuotationRepo struct {
	quotations map[uuid.UUID]entity.Quotation
	lineRepo   *fakeQuotationLineRepo
	nextNum    int
}

func newFakeQuotationRepo(lineRepo *fakeQuotationLineRepo) *fakeQuotationRepo {
	return &fakeQuotationRepo{
		quotations: make(map[uuid.UUID]entity.Quotation),
		lineRepo:   lineRepo,
		nextNum:    1,
	}
}

func (r *fakeQuotationRepo) Create(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	r.quotations[quotation.ID] = *quotation
	r.nextNum++
	return nil
}

func (r *fakeQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	if q, ok := r.quotations[id]; ok {
		out := q
		return &out, nil
	}
	return nil, nil
}

func (r *fakeQuotationRepo) GetByReference(ctx context.Context, reference string) (*entity.Quotation, error) {
	for _, q := range r.quotations {
		if q.Reference == reference {
			out := q
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeQuotationRepo) Update(ctx context.Context, quotation *entity.Quotation) error {
	r.quotations[quotation.ID] = *quotation
	return nil
}

func (r *fakeQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.quotations, id)
	return nil
}

func (r *fakeQuotationRepo) List(ctx context.Context, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var out []entity.Quotation
	for _, q := range r.quotations {
		if params.Status != nil && q.Status != *params.Status {
			continue
		}
		out = append(out, q)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuotationRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	q, err := r.GetByID(ctx, id)
	if err != nil || q == nil {
		return q, err
	}
	q.Lines, _ = r.lineRepo.GetByQuotationID(ctx, id)
	return q, nil
}

func (r *fakeQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	q, ok := r.quotations[id]
	if !ok {
		return nil
	}
	q.Status = status
	r.quotations[id] = q
	return nil
}

func (r *fakeQuotationRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return r.nextNum, nil
}

type fakeSettingsRepo struct {
	settings *entity.CompanySettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	out := *r.settings
	return &out, nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *entity.CompanySettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	r.settings = settings
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.CompanySettings) error {
	r.settings = settings
	return nil
}

type fakeExpenseLineRepo struct {
	lines map[uuid.UUID][]entity.ExpenseLine
}

func newFakeExpenseLineRepo() *fakeExpenseLineRepo {
	return &fakeExpenseLineRepo{lines: make(map[uuid.UUID][]entity.ExpenseLine)}
}

func (r *fakeExpenseLineRepo) CreateBatch(ctx context.Context, lines []entity.ExpenseLine) error {
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		r.lines[lines[i].VoucherID] = append(r.lines[lines[i].VoucherID], lines[i])
	}
	return nil
}

func (r *fakeExpenseLineRepo) GetByVoucherID(ctx context.Context, voucherID uuid.UUID) ([]entity.ExpenseLine, error) {
	return r.lines[voucherID], nil
}

func (r *fakeExpenseLineRepo) DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error {
	delete(r.lines, voucherID)
	return nil
}

type fakeExpenseRepo struct {
	vouchers map[uuid.UUID]entity.ExpenseVoucher
	lineRepo *fakeExpenseLineRepo
	nextNum  int
}

func newFakeExpenseRepo(lineRepo *fakeExpenseLineRepo) *fakeExpenseRepo {
	return &fakeExpenseRepo{
		vouchers: make(map[uuid.UUID]entity.ExpenseVoucher),
		lineRepo: lineRepo,
		nextNum:  1,
	}
}

func (r *fakeExpenseRepo) Create(ctx context.Context, voucher *entity.ExpenseVoucher) error {
	if voucher.ID == uuid.Nil {
		voucher.ID = uuid.New()
	}
	r.vouchers[voucher.ID] = *voucher
	r.nextNum++
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	if v, ok := r.vouchers[id]; ok {
		out := v
		return &out, nil
	}
	return nil, nil
}

func (r *fakeExpenseRepo) GetByVoucherNo(ctx context.Context, voucherNo string) (*entity.ExpenseVoucher, error) {
	for _, v := range r.vouchers {
		if v.VoucherNo == voucherNo {
			out := v
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, voucher *entity.ExpenseVoucher) error {
	r.vouchers[voucher.ID] = *voucher
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vouchers, id)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.ExpenseVoucher, int64, error) {
	var out []entity.ExpenseVoucher
	for _, v := range r.vouchers {
		if params.Mode != nil && v.PaymentMode != *params.Mode {
			continue
		}
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeExpenseRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	v, err := r.GetByID(ctx, id)
	if err != nil || v == nil {
		return v, err
	}
	v.Lines, _ = r.lineRepo.GetByVoucherID(ctx, id)
	return v, nil
}

func (r *fakeExpenseRepo) GetNextVoucherNumber(ctx context.Context) (int, error) {
	return r.nextNum, nil
}
