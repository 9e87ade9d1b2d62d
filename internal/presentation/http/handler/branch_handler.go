package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stockify/stockify-api/internal/application/service"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/request"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/response"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// BranchHandler handles branch management HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// List handles listing branches
func (h *BranchHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.branchService.ListBranches(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Branches retrieved successfully", result)
}

// Create handles creating a branch
func (h *BranchHandler) Create(c *gin.Context) {
	var req request.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), &service.CreateBranchInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Branch created successfully", branch)
}

// Get handles getting a single branch
func (h *BranchHandler) Get(c *gin.Context) {
	branch, err := h.branchService.GetBranch(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch retrieved successfully", branch)
}

// Update handles updating a branch
func (h *BranchHandler) Update(c *gin.Context) {
	var req request.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateBranchInput{
		Slug:    c.Param("slug"),
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if req.Status != nil {
		status := enum.Status(*req.Status)
		input.Status = &status
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch updated successfully", branch)
}

// Delete handles deleting a branch
func (h *BranchHandler) Delete(c *gin.Context) {
	if err := h.branchService.DeleteBranch(c.Request.Context(), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AssignUser moves a user to a branch
func (h *BranchHandler) AssignUser(c *gin.Context) {
	var req request.AssignBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.branchService.AssignUserToBranch(c.Request.Context(), req.UserID, req.BranchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User assigned to branch successfully", user)
}
