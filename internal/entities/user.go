package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown user role")

// Role is the account kind of an actor. Authentication is an external
// concern; the core only maps a role onto its fixed capability set.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// Capability strings gating storefront routes.
const (
	PermBrowseProducts = "BROWSE_PRODUCTS"
	PermBuyProducts    = "BUY_PRODUCTS"
	PermViewOrders     = "VIEW_ORDERS"
	PermManageProducts = "MANAGE_PRODUCTS"
	PermViewSales      = "VIEW_SALES"
	PermManageCoupons  = "MANAGE_COUPONS"
	PermManageUsers    = "MANAGE_USERS"
	PermViewReports    = "VIEW_REPORTS"
	PermManagePlatform = "MANAGE_PLATFORM"
)

// Behavior here is just data, so the lookup is a table rather than
// per-role types.
var rolePermissions = map[Role][]string{
	RoleCustomer: {PermBrowseProducts, PermBuyProducts, PermViewOrders},
	RoleSeller:   {PermManageProducts, PermViewSales, PermManageCoupons},
	RoleAdmin:    {PermManageUsers, PermViewReports, PermManagePlatform},
}

// ParseRole resolves a role discriminator, case-insensitively.
func ParseRole(kind string) (Role, error) {
	role := Role(strings.ToLower(kind))
	if _, ok := rolePermissions[role]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, kind)
	}
	return role, nil
}

// Permissions returns the fixed capability set of the role.
func (r Role) Permissions() []string {
	return append([]string(nil), rolePermissions[r]...)
}

// Can reports whether the role holds the capability.
func (r Role) Can(permission string) bool {
	for _, p := range rolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
