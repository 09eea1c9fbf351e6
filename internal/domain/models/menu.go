package models

// MenuItem is one sidebar navigation entry.
type MenuItem struct {
	ID       string `json:"id" yaml:"id"`
	Href     string `json:"href" yaml:"href"`
	Label    string `json:"label" yaml:"label"`
	Category string `json:"category" yaml:"category"`
	Order    int    `json:"order" yaml:"order"`
	Pinned   bool   `json:"pinned"`
}

// MenuCategory groups sidebar entries.
type MenuCategory struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// MenuGroup is a category with its entries, in menu order.
type MenuGroup struct {
	Category MenuCategory `json:"category"`
	Items    []MenuItem   `json:"items"`
}

// Preferences is the per-user navigation and display state.
type Preferences struct {
	PinnedMenus      []string `json:"pinnedMenus"`
	MenuOrder        []string `json:"menuOrder"`
	SidebarCollapsed bool     `json:"sidebarCollapsed"`
	Theme            string   `json:"theme"`
}
