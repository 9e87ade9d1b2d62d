package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a staff member in the system
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID        *uuid.UUID     `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	FirstName       string         `gorm:"size:255;not null" json:"first_name"`
	LastName        string         `gorm:"size:255;not null" json:"last_name"`
	Username        string         `gorm:"size:255;unique" json:"username"`
	Email           string         `gorm:"size:255;unique;not null" json:"email"`
	Password        string         `gorm:"size:255" json:"-"`
	Provider        string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID      *string        `gorm:"size:255" json:"-"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	Photo           *string        `gorm:"size:255" json:"photo,omitempty"`
	Status          enum.Status    `gorm:"size:20;default:'active'" json:"status"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Roles  []Role  `gorm:"many2many:user_has_roles;foreignKey:ID;joinForeignKey:user_id;References:ID;joinReferences:role_id" json:"roles,omitempty"`
	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// Role represents a role in the RBAC system
type Role struct {
	ID          uint           `gorm:"primary_key" json:"id"`
	Name        string         `gorm:"size:255;unique;not null" json:"name"`
	Status      enum.Status    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Permissions []Permission   `gorm:"many2many:role_has_permissions;foreignKey:ID;joinForeignKey:role_id;References:ID;joinReferences:permission_id" json:"permissions,omitempty"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// Permission grants one CRUD action on one module (e.g. products/read)
type Permission struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Module    string    `gorm:"size:100;not null;uniqueIndex:idx_module_action" json:"module"`
	Action    string    `gorm:"size:20;not null;uniqueIndex:idx_module_action" json:"action"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Permission model
func (Permission) TableName() string {
	return "permissions"
}

// CRUD action names used in the permission matrix
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ModulePermissions holds the CRUD flags for one module
type ModulePermissions struct {
	Create bool `json:"create"`
	Read   bool `json:"read"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// PermissionSet maps module name to its CRUD flags. It travels inside JWT
// claims and is returned from /auth/me so clients can gate UI actions;
// the server re-checks it on every request.
type PermissionSet map[string]ModulePermissions

// Can reports whether the set allows the given action on the module
func (p PermissionSet) Can(module, action string) bool {
	mp, ok := p[module]
	if !ok {
		return false
	}
	switch action {
	case ActionCreate:
		return mp.Create
	case ActionRead:
		return mp.Read
	case ActionUpdate:
		return mp.Update
	case ActionDelete:
		return mp.Delete
	}
	return false
}

// CanRead reports read access to the module
func (p PermissionSet) CanRead(module string) bool { return p.Can(module, ActionRead) }

// CanCreate reports create access to the module
func (p PermissionSet) CanCreate(module string) bool { return p.Can(module, ActionCreate) }

// CanUpdate reports update access to the module
func (p PermissionSet) CanUpdate(module string) bool { return p.Can(module, ActionUpdate) }

// CanDelete reports delete access to the module
func (p PermissionSet) CanDelete(module string) bool { return p.Can(module, ActionDelete) }

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	for _, role := range u.Roles {
		if role.Name == roleName {
			return true
		}
	}
	return false
}

// RoleNames returns the names of all roles assigned to the user
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// Permissions flattens the user's active roles into a module -> CRUD matrix
func (u *User) Permissions() PermissionSet {
	set := make(PermissionSet)
	for _, role := range u.Roles {
		if role.Status != enum.StatusActive {
			continue
		}
		for _, perm := range role.Permissions {
			mp := set[perm.Module]
			switch perm.Action {
			case ActionCreate:
				mp.Create = true
			case ActionRead:
				mp.Read = true
			case ActionUpdate:
				mp.Update = true
			case ActionDelete:
				mp.Delete = true
			}
			set[perm.Module] = mp
		}
	}
	return set
}
