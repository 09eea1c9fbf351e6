package services

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog/log"

	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	"dashkit/internal/store"
)

// DefaultPinned is the pinned set of a user who never changed it.
var DefaultPinned = []string{"dashboard", "analytics", "projects", "tasks", "settings"}

// PreferencesService keeps per-user navigation settings in the injected
// store. Unreadable values fall back to their defaults.
type PreferencesService struct {
	KV   store.KV
	Menu MenuService
}

func readOr[T any](ctx context.Context, kv store.KV, key string, fallback T) (T, error) {
	v, err := store.GetJSON[T](ctx, kv, key)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, store.ErrNotFound):
		return fallback, nil
	case ctx.Err() != nil:
		return fallback, ctx.Err()
	default:
		log.Warn().Err(err).Str("key", key).Msg("unreadable preference, using default")
		return fallback, nil
	}
}

func (s PreferencesService) key(uid domain.ID, k string) string {
	return store.UserKey(string(uid), k)
}

func (s PreferencesService) PinnedMenuIDs(ctx context.Context, uid domain.ID) ([]string, error) {
	return readOr(ctx, s.KV, s.key(uid, store.KeyPinnedMenus), slices.Clone(DefaultPinned))
}

func (s PreferencesService) MenuOrder(ctx context.Context, uid domain.ID) ([]string, error) {
	return readOr(ctx, s.KV, s.key(uid, store.KeyMenuOrder), []string{})
}

// OrderedPinnedMenuIDs lists pinned ids in menu order first, then the
// pinned ids the order does not mention.
func (s PreferencesService) OrderedPinnedMenuIDs(ctx context.Context, uid domain.ID) ([]string, error) {
	pinned, err := s.PinnedMenuIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	order, err := s.MenuOrder(ctx, uid)
	if err != nil {
		return nil, err
	}
	return orderPinned(pinned, order), nil
}

func orderPinned(pinned, order []string) []string {
	if len(order) == 0 {
		return pinned
	}
	out := make([]string, 0, len(pinned))
	for _, id := range order {
		if slices.Contains(pinned, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	for _, id := range pinned {
		if !slices.Contains(order, id) {
			out = append(out, id)
		}
	}
	return out
}

func (s PreferencesService) checkMenu(id string) error {
	if _, ok := s.Menu.Lookup(id); !ok {
		return domain.ValidationError{Field: "menuId", Msg: "unknown menu item " + id}
	}
	return nil
}

// AddPin pins id and appends it to the menu order. Pinning twice is a
// no-op.
func (s PreferencesService) AddPin(ctx context.Context, uid domain.ID, id string) error {
	if err := s.checkMenu(id); err != nil {
		return err
	}
	pinned, err := s.PinnedMenuIDs(ctx, uid)
	if err != nil {
		return err
	}
	if slices.Contains(pinned, id) {
		return nil
	}
	order, err := s.MenuOrder(ctx, uid)
	if err != nil {
		return err
	}
	if err := store.SetJSON(ctx, s.KV, s.key(uid, store.KeyPinnedMenus), append(pinned, id)); err != nil {
		return err
	}
	return store.SetJSON(ctx, s.KV, s.key(uid, store.KeyMenuOrder), append(order, id))
}

// RemovePin unpins id. The menu order is left alone.
func (s PreferencesService) RemovePin(ctx context.Context, uid domain.ID, id string) error {
	if err := s.checkMenu(id); err != nil {
		return err
	}
	pinned, err := s.PinnedMenuIDs(ctx, uid)
	if err != nil {
		return err
	}
	pinned = slices.DeleteFunc(pinned, func(p string) bool { return p == id })
	return store.SetJSON(ctx, s.KV, s.key(uid, store.KeyPinnedMenus), pinned)
}

// TogglePin flips id and reports whether it is now pinned.
func (s PreferencesService) TogglePin(ctx context.Context, uid domain.ID, id string) (bool, error) {
	pinned, err := s.PinnedMenuIDs(ctx, uid)
	if err != nil {
		return false, err
	}
	if slices.Contains(pinned, id) {
		return false, s.RemovePin(ctx, uid, id)
	}
	return true, s.AddPin(ctx, uid, id)
}

// ReorderPins stores ids as the menu order.
func (s PreferencesService) ReorderPins(ctx context.Context, uid domain.ID, ids []string) error {
	seen := map[string]bool{}
	for _, id := range ids {
		if err := s.checkMenu(id); err != nil {
			return err
		}
		if seen[id] {
			return domain.ValidationError{Field: "order", Msg: "duplicate menu item " + id}
		}
		seen[id] = true
	}
	return store.SetJSON(ctx, s.KV, s.key(uid, store.KeyMenuOrder), ids)
}

func (s PreferencesService) SidebarCollapsed(ctx context.Context, uid domain.ID) (bool, error) {
	return readOr(ctx, s.KV, s.key(uid, store.KeySidebarCollapsed), false)
}

func (s PreferencesService) SetSidebarCollapsed(ctx context.Context, uid domain.ID, collapsed bool) error {
	return store.SetJSON(ctx, s.KV, s.key(uid, store.KeySidebarCollapsed), collapsed)
}

func (s PreferencesService) Theme(ctx context.Context, uid domain.ID) (domain.Theme, error) {
	t, err := readOr(ctx, s.KV, s.key(uid, store.KeyTheme), domain.ThemeSystem)
	if err == nil && !t.Valid() {
		t = domain.ThemeSystem
	}
	return t, err
}

func (s PreferencesService) SetTheme(ctx context.Context, uid domain.ID, t domain.Theme) error {
	if !t.Valid() {
		return domain.ValidationError{Field: "theme", Msg: "theme must be light, dark or system"}
	}
	return store.SetJSON(ctx, s.KV, s.key(uid, store.KeyTheme), t)
}

// Get gathers every preference of uid.
func (s PreferencesService) Get(ctx context.Context, uid domain.ID) (models.Preferences, error) {
	pinned, err := s.OrderedPinnedMenuIDs(ctx, uid)
	if err != nil {
		return models.Preferences{}, err
	}
	order, err := s.MenuOrder(ctx, uid)
	if err != nil {
		return models.Preferences{}, err
	}
	collapsed, err := s.SidebarCollapsed(ctx, uid)
	if err != nil {
		return models.Preferences{}, err
	}
	theme, err := s.Theme(ctx, uid)
	if err != nil {
		return models.Preferences{}, err
	}
	return models.Preferences{
		PinnedMenus:      pinned,
		MenuOrder:        order,
		SidebarCollapsed: collapsed,
		Theme:            string(theme),
	}, nil
}

// PinnedMenu resolves the ordered pinned ids to menu items.
func (s PreferencesService) PinnedMenu(ctx context.Context, uid domain.ID) ([]models.MenuItem, error) {
	ids, err := s.OrderedPinnedMenuIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.Menu.Resolve(ids), nil
}
