package store

import "strings"

const (
	KeyUser             = "app_user"
	KeySession          = "app_session"
	KeyDemoUsers        = "app_demo_users"
	KeyPinnedMenus      = "app_pinned_menus"
	KeyMenuOrder        = "app_menu_order"
	KeySidebarCollapsed = "app_sidebar_collapsed"
	KeyTheme            = "theme-mode"
)

// UserKey namespaces key under one user, e.g. "user:1:app_pinned_menus".
func UserKey(userID, key string) string {
	return "user:" + strings.TrimSpace(userID) + ":" + key
}
