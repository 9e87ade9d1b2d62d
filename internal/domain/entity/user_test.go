package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockify/stockify-api/internal/domain/enum"
)

func TestPermissionSetCan(t *testing.T) {
	set := PermissionSet{
		"orders":   {Create: true, Read: true},
		"products": {Read: true},
	}

	assert.True(t, set.Can("orders", ActionCreate))
	assert.True(t, set.Can("orders", ActionRead))
	assert.False(t, set.Can("orders", ActionUpdate))
	assert.False(t, set.Can("products", ActionDelete))
	assert.False(t, set.Can("missing", ActionRead))
	assert.False(t, set.Can("orders", "unknown"))

	assert.True(t, set.CanRead("products"))
	assert.False(t, set.CanCreate("products"))
}

func TestUserPermissionsFlattensActiveRoles(t *testing.T) {
	user := &User{
		Roles: []Role{
			{
				Name:   "staff",
				Status: enum.StatusActive,
				Permissions: []Permission{
					{Module: "orders", Action: ActionCreate},
					{Module: "orders", Action: ActionRead},
				},
			},
			{
				Name:   "auditor",
				Status: enum.StatusActive,
				Permissions: []Permission{
					{Module: "reports", Action: ActionRead},
					{Module: "orders", Action: ActionUpdate},
				},
			},
			{
				Name:   "suspended",
				Status: enum.StatusInactive,
				Permissions: []Permission{
					{Module: "users", Action: ActionDelete},
				},
			},
		},
	}

	set := user.Permissions()

	// Grants from active roles union together
	assert.True(t, set.Can("orders", ActionCreate))
	assert.True(t, set.Can("orders", ActionRead))
	assert.True(t, set.Can("orders", ActionUpdate))
	assert.True(t, set.Can("reports", ActionRead))

	// Inactive roles contribute nothing
	assert.False(t, set.Can("users", ActionDelete))
}

func TestUserHasRole(t *testing.T) {
	user := &User{Roles: []Role{{Name: "admin"}, {Name: "staff"}}}

	assert.True(t, user.HasRole("admin"))
	assert.False(t, user.HasRole("super-admin"))
	assert.Equal(t, []string{"admin", "staff"}, user.RoleNames())
}

func TestStockEntryDelta(t *testing.T) {
	in := &StockEntry{Type: enum.StockEntryIn, Quantity: 5}
	out := &StockEntry{Type: enum.StockEntryOut, Quantity: 3}

	assert.Equal(t, 5, in.Delta())
	assert.Equal(t, -3, out.Delta())
}

func TestProductIsLowStock(t *testing.T) {
	assert.True(t, (&Product{Quantity: 3, QuantityAlert: 5}).IsLowStock())
	assert.True(t, (&Product{Quantity: 5, QuantityAlert: 5}).IsLowStock())
	assert.False(t, (&Product{Quantity: 6, QuantityAlert: 5}).IsLowStock())
	// Zero threshold disables the alert
	assert.False(t, (&Product{Quantity: 0, QuantityAlert: 0}).IsLowStock())
}
