package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/finance"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
	"github.com/kiranps/tradebooks-api/pkg/utils"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	UserID        uuid.UUID
	Name          string
	Code          string
	HSN           *string
	Unit          string
	PurchasePrice string
	SellingPrice  string
	TaxDescriptor string
	Notes         *string
}

// CreateItem creates a new catalog item. Prices arrive as raw strings and
// degrade to zero when malformed; the tax descriptor is stored verbatim.
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	code := input.Code
	if code == "" {
		code = utils.GenerateItemCode()
	} else {
		existing, err := s.itemRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Item code already used")
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "Pcs"
	}
	descriptor := input.TaxDescriptor
	if descriptor == "" {
		descriptor = "None"
	}

	item := &entity.Item{
		UserID:        input.UserID,
		Name:          input.Name,
		Code:          code,
		HSN:           input.HSN,
		Unit:          unit,
		PurchasePrice: finance.ParseAmount(input.PurchasePrice),
		SellingPrice:  finance.ParseAmount(input.SellingPrice),
		TaxDescriptor: descriptor,
		Notes:         input.Notes,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItemsInput represents the input for listing items
type ListItemsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	HSN        string
}

// ListItems lists items with filtering
func (s *ItemService) ListItems(ctx context.Context, input *ListItemsInput) (*pagination.PaginatedResult[entity.Item], error) {
	params := &repository.ItemFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		HSN:        input.HSN,
	}

	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// SearchItems returns catalog matches for line-entry lookups
func (s *ItemService) SearchItems(ctx context.Context, term string, limit int) ([]entity.Item, error) {
	return s.itemRepo.Search(ctx, term, limit)
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	ID            uuid.UUID
	Name          *string
	HSN           *string
	Unit          *string
	PurchasePrice *string
	SellingPrice  *string
	TaxDescriptor *string
	Notes         *string
}

// UpdateItem updates a catalog item
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.HSN != nil {
		item.HSN = input.HSN
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.PurchasePrice != nil {
		item.PurchasePrice = finance.ParseAmount(*input.PurchasePrice)
	}
	if input.SellingPrice != nil {
		item.SellingPrice = finance.ParseAmount(*input.SellingPrice)
	}
	if input.TaxDescriptor != nil {
		item.TaxDescriptor = *input.TaxDescriptor
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ImportItemRow represents a single row from the import file
type ImportItemRow struct {
	Name          string
	Code          string
	HSN           string
	Unit          string
	PurchasePrice string
	SellingPrice  string
	TaxDescriptor string
	Notes         string
}

// ImportResult contains the result of an item import operation
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes an error for a specific row during import
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportItems validates and bulk-creates catalog items from parsed import rows
func (s *ItemService) ImportItems(ctx context.Context, userID uuid.UUID, rows []ImportItemRow) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows)}
	var rowErrors []ImportRowError

	// Track codes seen in this import batch to detect duplicates within the file
	seenCodes := make(map[string]int) // code -> row number

	var validItems []entity.Item

	for i, row := range rows {
		rowNum := i + 2 // row 1 is the header, data starts at row 2

		if strings.TrimSpace(row.Name) == "" {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "name", Message: "Name is required"})
			continue
		}

		// Auto-generate code if empty
		code := strings.TrimSpace(row.Code)
		if code == "" {
			code = utils.GenerateItemCode()
		}

		if prevRow, exists := seenCodes[code]; exists {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "code",
				Message: fmt.Sprintf("Duplicate code '%s' (same as row %d)", code, prevRow),
			})
			continue
		}

		existing, err := s.itemRepo.GetByCode(ctx, code)
		if err != nil {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "code", Message: "Error checking code: " + err.Error()})
			continue
		}
		if existing != nil {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "code",
				Message: fmt.Sprintf("Item code '%s' already exists", code),
			})
			continue
		}

		seenCodes[code] = rowNum

		unit := strings.TrimSpace(row.Unit)
		if unit == "" {
			unit = "Pcs"
		}
		descriptor := strings.TrimSpace(row.TaxDescriptor)
		if descriptor == "" {
			descriptor = "None"
		}

		item := entity.Item{
			UserID:        userID,
			Name:          strings.TrimSpace(row.Name),
			Code:          code,
			Unit:          unit,
			PurchasePrice: finance.ParseAmount(row.PurchasePrice),
			SellingPrice:  finance.ParseAmount(row.SellingPrice),
			TaxDescriptor: descriptor,
		}
		if hsn := strings.TrimSpace(row.HSN); hsn != "" {
			item.HSN = &hsn
		}
		if notes := strings.TrimSpace(row.Notes); notes != "" {
			item.Notes = &notes
		}

		validItems = append(validItems, item)
	}

	// Batch create valid items
	if len(validItems) > 0 {
		if err := s.itemRepo.CreateBatch(ctx, validItems); err != nil {
			return nil, apperror.NewAppError(500, "Failed to import items: "+err.Error())
		}
	}

	result.Successful = len(validItems)
	result.Failed = len(rowErrors)
	result.Errors = rowErrors

	return result, nil
}

// DeleteItem deletes a catalog item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	return s.itemRepo.Delete(ctx, id)
}
