package services

import (
	"slices"

	"dashkit/internal/domain/models"
)

var menuItems = []models.MenuItem{
	{ID: "dashboard", Href: "/dashboard", Label: "Dashboard", Category: "overview", Order: 1},
	{ID: "analytics", Href: "/analytics", Label: "Analytics", Category: "overview", Order: 2},
	{ID: "reports", Href: "/reports", Label: "Reports", Category: "overview", Order: 3},
	{ID: "items", Href: "/items", Label: "Items", Category: "content", Order: 4},
	{ID: "projects", Href: "/projects", Label: "Projects", Category: "content", Order: 5},
	{ID: "tasks", Href: "/tasks", Label: "Tasks", Category: "content", Order: 6},
	{ID: "calendar", Href: "/calendar", Label: "Calendar", Category: "content", Order: 7},
	{ID: "messages", Href: "/messages", Label: "Messages", Category: "collaboration", Order: 8},
	{ID: "team", Href: "/team", Label: "Team", Category: "collaboration", Order: 9},
	{ID: "orders", Href: "/orders", Label: "Orders", Category: "commerce", Order: 10},
	{ID: "inbox", Href: "/inbox", Label: "Inbox", Category: "commerce", Order: 11},
	{ID: "settings", Href: "/settings", Label: "Settings", Category: "system", Order: 12},
	{ID: "integrations", Href: "/integrations", Label: "Integrations", Category: "system", Order: 13},
	{ID: "support", Href: "/support", Label: "Support", Category: "system", Order: 14},
}

var menuCategories = []models.MenuCategory{
	{ID: "overview", Label: "Overview"},
	{ID: "content", Label: "Content Management"},
	{ID: "collaboration", Label: "Collaboration"},
	{ID: "commerce", Label: "Commerce"},
	{ID: "system", Label: "System"},
}

// MenuService serves the sidebar navigation.
type MenuService struct{}

func (MenuService) Items() []models.MenuItem { return slices.Clone(menuItems) }

func (MenuService) Categories() []models.MenuCategory { return slices.Clone(menuCategories) }

func (MenuService) Lookup(id string) (models.MenuItem, bool) {
	i := slices.IndexFunc(menuItems, func(m models.MenuItem) bool { return m.ID == id })
	if i < 0 {
		return models.MenuItem{}, false
	}
	return menuItems[i], true
}

// Groups returns every category with its items in menu order, flagging
// the pinned ones.
func (s MenuService) Groups(pinned []string) []models.MenuGroup {
	out := make([]models.MenuGroup, 0, len(menuCategories))
	for _, cat := range menuCategories {
		g := models.MenuGroup{Category: cat, Items: []models.MenuItem{}}
		for _, item := range menuItems {
			if item.Category != cat.ID {
				continue
			}
			item.Pinned = slices.Contains(pinned, item.ID)
			g.Items = append(g.Items, item)
		}
		slices.SortStableFunc(g.Items, func(a, b models.MenuItem) int { return a.Order - b.Order })
		out = append(out, g)
	}
	return out
}

// Resolve maps ids to menu items in the given order, dropping ids that
// are no longer in the menu.
func (s MenuService) Resolve(ids []string) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.Lookup(id); ok {
			item.Pinned = true
			out = append(out, item)
		}
	}
	return out
}
