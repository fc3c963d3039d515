package models

// RoleUltraAdmin may read any tenant's leads
const RoleUltraAdmin = "ultra-admin"

// Identity is the caller as described by the upstream auth layer
type Identity struct {
	UserID    string `json:"userId,omitempty"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId"`
}

// IsUltraAdmin reports whether the caller may act on other tenants
func (i *Identity) IsUltraAdmin() bool {
	return i != nil && i.Role == RoleUltraAdmin
}
