package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/application/service"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/request"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/response"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// StockHandler handles stock adjustment HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Adjust handles recording a manual stock adjustment
func (h *StockHandler) Adjust(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entryType, err := service.ParseStockEntryType(req.Type)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.stockService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		UserID:    *userID,
		ProductID: req.ProductID,
		Type:      entryType,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjusted successfully", entry)
}

// List handles listing stock entries
func (h *StockHandler) List(c *gin.Context) {
	var filter request.StockEntryFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.StockEntryFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}
	params.Pagination.Validate()

	if filter.ProductID != "" {
		productID, err := uuid.Parse(filter.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product_id")
			return
		}
		params.ProductID = &productID
	}
	if filter.Type != "" {
		entryType, err := service.ParseStockEntryType(filter.Type)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		params.Type = &entryType
	}

	var err error
	if params.StartDate, err = parseDate(filter.StartDate); err != nil {
		response.BadRequest(c, "Invalid start_date; use YYYY-MM-DD")
		return
	}
	if params.EndDate, err = parseDate(filter.EndDate); err != nil {
		response.BadRequest(c, "Invalid end_date; use YYYY-MM-DD")
		return
	}

	result, err := h.stockService.ListStockEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock entries retrieved successfully", result)
}

// Get handles getting a single stock entry
func (h *StockHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stock entry ID")
		return
	}

	entry, err := h.stockService.GetStockEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock entry retrieved successfully", entry)
}
