package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/stockify/stockify-api/internal/application/service"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/request"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/response"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Status:    filter.Status,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	params.Pagination.Validate()

	if filter.CategoryID != "" {
		catID, err := uuid.Parse(filter.CategoryID)
		if err == nil {
			params.CategoryID = &catID
		}
	}

	if filter.SupplierID != "" {
		supID, err := uuid.Parse(filter.SupplierID)
		if err == nil {
			params.SupplierID = &supID
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		UserID:        *userID,
		CategoryID:    req.CategoryID,
		SupplierID:    req.SupplierID,
		Name:          req.Name,
		SKU:           req.SKU,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		TaxRate:       req.TaxRate,
		TaxType:       req.TaxType,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Product slug is required")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Product slug is required")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateProductInput{
		ProductSlug:   slug,
		CategoryID:    req.CategoryID,
		SupplierID:    req.SupplierID,
		Name:          req.Name,
		SKU:           req.SKU,
		QuantityAlert: req.QuantityAlert,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		TaxRate:       req.TaxRate,
		TaxType:       req.TaxType,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := enum.Status(*req.Status)
		input.Status = &status
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product by slug
func (h *ProductHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Product slug is required")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), slug); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetLowStock handles getting low stock products
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

// Import handles bulk product import from an uploaded CSV or XLSX file.
// The first row is a header; recognized columns are name, sku, quantity,
// quantity_alert, purchase_price, selling_price, tax_rate, tax_type,
// notes, category and supplier.
func (h *ProductHandler) Import(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Upload a file in the 'file' form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read uploaded file")
		return
	}
	defer file.Close()

	var records [][]string
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		records, err = readCSVRecords(file)
	case ".xlsx":
		records, err = readXLSXRecords(file)
	default:
		response.BadRequest(c, "Unsupported file type; use .csv or .xlsx")
		return
	}
	if err != nil {
		response.BadRequest(c, "Could not parse file: "+err.Error())
		return
	}

	rows, err := parseImportRows(records)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.ImportProducts(c.Request.Context(), *userID, rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product import completed", result)
}

// readCSVRecords reads all rows from a CSV file
func readCSVRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// readXLSXRecords reads all rows from the first sheet of an XLSX file
func readXLSXRecords(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// parseImportRows maps header-keyed records onto import rows
func parseImportRows(records [][]string) ([]service.ImportProductRow, error) {
	if len(records) < 2 {
		return nil, errors.New("file must contain a header row and at least one data row")
	}

	// Map column positions from the header row
	colIndex := make(map[string]int)
	for i, col := range records[0] {
		key := strings.ToLower(strings.TrimSpace(col))
		key = strings.ReplaceAll(key, " ", "_")
		colIndex[key] = i
	}
	if _, ok := colIndex["name"]; !ok {
		return nil, errors.New("header row must contain a 'name' column")
	}

	cell := func(record []string, key string) string {
		idx, ok := colIndex[key]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	intCell := func(record []string, key string) int {
		v, _ := strconv.Atoi(cell(record, key))
		return v
	}
	floatCell := func(record []string, key string) float64 {
		v, _ := strconv.ParseFloat(cell(record, key), 64)
		return v
	}

	rows := make([]service.ImportProductRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, service.ImportProductRow{
			Name:          cell(record, "name"),
			SKU:           cell(record, "sku"),
			Quantity:      intCell(record, "quantity"),
			QuantityAlert: intCell(record, "quantity_alert"),
			PurchasePrice: floatCell(record, "purchase_price"),
			SellingPrice:  floatCell(record, "selling_price"),
			TaxRate:       intCell(record, "tax_rate"),
			TaxType:       intCell(record, "tax_type"),
			Notes:         cell(record, "notes"),
			CategoryName:  cell(record, "category"),
			SupplierName:  cell(record, "supplier"),
		})
	}

	return rows, nil
}

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles listing categories
func (h *CategoryHandler) List(c *gin.Context) {
	params := &pagination.PaginationParams{
		Page:    1,
		PerPage: 50,
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		params.PerPage = perPage
	}
	params.Validate()

	result, err := h.categoryService.ListCategories(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Categories retrieved successfully", result)
}

// Create handles creating a category
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), *userID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// Get handles getting a single category
func (h *CategoryHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Category slug is required")
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved successfully", category)
}

// Update handles updating a category
func (h *CategoryHandler) Update(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Category slug is required")
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var status *enum.Status
	if req.Status != nil {
		s := enum.Status(*req.Status)
		status = &s
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), slug, req.Name, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// Delete handles deleting a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Category slug is required")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), slug); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
