package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/request"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		UserID:        *userID,
		Name:          req.Name,
		Code:          req.Code,
		HSN:           req.HSN,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		TaxDescriptor: req.TaxDescriptor,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	var req request.ItemFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	}
	params.Validate()

	result, err := h.itemService.ListItems(c.Request.Context(), &service.ListItemsInput{
		Pagination: params,
		Search:     req.Search,
		HSN:        req.HSN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Search handles typeahead item lookup for document entry screens
func (h *ItemHandler) Search(c *gin.Context) {
	term := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := h.itemService.SearchItems(c.Request.Context(), term, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", items)
}

// Import handles bulk item upload from an .xlsx file.
// Expected columns: Name, Code, HSN, Unit, Purchase Price, Selling Price, Tax, Notes.
func (h *ItemHandler) Import(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Import file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Failed to open import file")
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		response.BadRequest(c, "Invalid Excel file: "+err.Error())
		return
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		response.BadRequest(c, "Excel file has no sheets")
		return
	}

	cells, err := workbook.GetRows(sheet)
	if err != nil {
		response.BadRequest(c, "Failed to read Excel rows: "+err.Error())
		return
	}
	if len(cells) < 2 {
		response.BadRequest(c, "Excel file has no data rows")
		return
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	rows := make([]service.ImportItemRow, 0, len(cells)-1)
	for _, row := range cells[1:] { // skip header
		rows = append(rows, service.ImportItemRow{
			Name:          cell(row, 0),
			Code:          cell(row, 1),
			HSN:           cell(row, 2),
			Unit:          cell(row, 3),
			PurchasePrice: cell(row, 4),
			SellingPrice:  cell(row, 5),
			TaxDescriptor: cell(row, 6),
			Notes:         cell(row, 7),
		})
	}

	result, err := h.itemService.ImportItems(c.Request.Context(), *userID, rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item import completed", result)
}

// Get handles getting a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ID:            id,
		Name:          req.Name,
		HSN:           req.HSN,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		TaxDescriptor: req.TaxDescriptor,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
