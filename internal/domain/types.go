package domain

// ID identifies a user or attachment.
type ID string

// Role is the organisation role carried by a user and its token.
type Role string

const (
	RoleOwner  Role = "org-owner"
	RoleAdmin  Role = "org-admin"
	RoleMember Role = "org-member"
)

// Permission names an action a role may perform.
type Permission string

const PermDashboardView Permission = "dashboard.view"

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID   ID     `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	// SessionID is the token id, used to end the session on logout.
	SessionID string `json:"-"`
}

// Anonymous reports whether no user is signed in.
func (r RequestContext) Anonymous() bool { return r.UserID == "" }
