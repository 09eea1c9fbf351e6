package catalog

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"dashkit/internal/domain/models"
)

// Overlay is a fixture file that replaces seeded collections. Absent
// sections leave the collection as it is.
type Overlay struct {
	Items    []models.Item       `yaml:"items"`
	Orders   []models.Order      `yaml:"orders"`
	Projects []models.Project    `yaml:"projects"`
	Team     []models.TeamMember `yaml:"team"`
	Reports  []models.Report     `yaml:"reports"`
	Tasks    []models.Task       `yaml:"tasks"`
	Activity []models.Activity   `yaml:"activity"`
}

func LoadOverlay(path string) (Overlay, error) {
	var o Overlay
	raw, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return o, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return o, nil
}

// Apply replaces every collection the overlay names and returns their
// names. Collections backed by a database are skipped.
func (o Overlay) Apply(c *Catalog) []string {
	var applied []string
	apply := func(name string, n int, replace func() bool) {
		if n == 0 {
			return
		}
		if !replace() {
			log.Warn().Str("collection", name).Msg("fixture overlay skipped: source is not replaceable")
			return
		}
		applied = append(applied, name)
	}
	apply("items", len(o.Items), func() bool { return c.Items.Replace(o.Items) })
	apply("orders", len(o.Orders), func() bool { return c.Orders.Replace(o.Orders) })
	apply("projects", len(o.Projects), func() bool { return c.Projects.Replace(o.Projects) })
	apply("team", len(o.Team), func() bool { return c.Team.Replace(o.Team) })
	apply("reports", len(o.Reports), func() bool { return c.Reports.Replace(o.Reports) })
	apply("tasks", len(o.Tasks), func() bool { return c.Tasks.Replace(o.Tasks) })
	apply("activity", len(o.Activity), func() bool { return c.Activity.Replace(o.Activity) })
	return applied
}

// Reload reads path and applies it.
func (c *Catalog) Reload(path string) ([]string, error) {
	o, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return o.Apply(c), nil
}
