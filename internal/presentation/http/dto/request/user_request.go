package request

import "github.com/google/uuid"

// CreateUserRequest represents a staff user creation request
type CreateUserRequest struct {
	FirstName string     `json:"first_name" binding:"required,min=2,max=255"`
	LastName  string     `json:"last_name" binding:"required,min=2,max=255"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	Phone     *string    `json:"phone" binding:"omitempty,max=50"`
	BranchID  *uuid.UUID `json:"branch_id"`
	RoleIDs   []uint     `json:"role_ids"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	FirstName *string    `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName  *string    `json:"last_name" binding:"omitempty,min=2,max=255"`
	Phone     *string    `json:"phone" binding:"omitempty,max=50"`
	Photo     *string    `json:"photo"`
	Status    *string    `json:"status" binding:"omitempty,oneof=active inactive"`
	BranchID  *uuid.UUID `json:"branch_id"`
}

// UpdateUserRolesRequest represents a user role assignment request
type UpdateUserRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}

// CreateRoleRequest represents a role creation request
type CreateRoleRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	PermissionIDs []uint `json:"permission_ids"`
}

// UpdateRolePermissionsRequest replaces a role's permission grants
type UpdateRolePermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" binding:"required"`
}
