package catalog

import (
	"dashkit/internal/domain/models"
	"dashkit/internal/utils"
)

func card(label string, n int) models.StatCard {
	return models.StatCard{Label: label, Value: utils.FormatCount(int64(n))}
}

func count[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

func distinct[T any](records []T, key func(T) string) int {
	seen := map[string]struct{}{}
	for _, r := range records {
		seen[key(r)] = struct{}{}
	}
	return len(seen)
}

func itemStats(items []models.Item) []models.StatCard {
	byStatus := func(s string) func(models.Item) bool {
		return func(i models.Item) bool { return i.Status == s }
	}
	return []models.StatCard{
		card("Total Items", len(items)),
		card("Active", count(items, byStatus("Active"))),
		card("Low Stock", count(items, byStatus("Low Stock"))),
		card("Out of Stock", count(items, byStatus("Out of Stock"))),
	}
}

func orderStats(orders []models.Order) []models.StatCard {
	revenue := 0.0
	for _, o := range orders {
		if o.Status != "Cancelled" {
			revenue += o.Total
		}
	}
	byStatus := func(s string) func(models.Order) bool {
		return func(o models.Order) bool { return o.Status == s }
	}
	return []models.StatCard{
		card("Total Orders", len(orders)),
		{Label: "Revenue", Value: utils.FormatUSD(revenue)},
		card("Pending", count(orders, byStatus("Pending"))),
		card("Delivered", count(orders, byStatus("Delivered"))),
	}
}

func projectStats(projects []models.Project) []models.StatCard {
	members := 0
	for _, p := range projects {
		members += p.Team
	}
	byStatus := func(s string) func(models.Project) bool {
		return func(p models.Project) bool { return p.Status == s }
	}
	return []models.StatCard{
		card("Total", len(projects)),
		card("On Track", count(projects, byStatus("On Track"))),
		card("At Risk", count(projects, byStatus("At Risk"))),
		card("Team Members", members),
	}
}

func teamStats(members []models.TeamMember) []models.StatCard {
	byStatus := func(s string) func(models.TeamMember) bool {
		return func(m models.TeamMember) bool { return m.Status == s }
	}
	return []models.StatCard{
		card("Total Members", len(members)),
		card("Active", count(members, byStatus("Active"))),
		card("On Leave", count(members, byStatus("On Leave"))),
		card("Departments", distinct(members, func(m models.TeamMember) string { return m.Dept })),
	}
}

func reportStats(reports []models.Report) []models.StatCard {
	byStatus := func(s string) func(models.Report) bool {
		return func(r models.Report) bool { return r.Status == s }
	}
	return []models.StatCard{
		card("Total Reports", len(reports)),
		card("Ready", count(reports, byStatus("Ready"))),
		card("Scheduled", count(reports, byStatus("Scheduled"))),
		card("Report Types", distinct(reports, func(r models.Report) string { return r.Type })),
	}
}

func taskStats(tasks []models.Task) []models.StatCard {
	done := count(tasks, func(t models.Task) bool { return t.Done })
	return []models.StatCard{
		card("Pending", len(tasks)-done),
		card("Completed", done),
		card("Total", len(tasks)),
	}
}

func activityStats(events []models.Activity) []models.StatCard {
	byType := func(s string) func(models.Activity) bool {
		return func(a models.Activity) bool { return a.Type == s }
	}
	return []models.StatCard{
		card("Events", len(events)),
		card("Orders", count(events, byType("order"))),
		card("Alerts", count(events, byType("alert"))),
		card("Deployments", count(events, byType("deploy"))),
	}
}
