package catalog

import (
	"strconv"

	"dashkit/internal/domain/models"
	lq "dashkit/internal/listquery"
)

func options(values ...string) []lq.FilterOption {
	out := make([]lq.FilterOption, len(values))
	for i, v := range values {
		out[i] = lq.FilterOption{Value: v, Label: v}
	}
	return out
}

func multi(id, label string, values ...string) lq.FilterField {
	return lq.FilterField{ID: id, Label: label, Kind: lq.KindMultiSelect, Options: options(values...)}
}

func ItemsSpec() Spec[models.Item] {
	return Spec[models.Item]{
		Name:  "items",
		Title: "Items",
		Schema: lq.Schema[models.Item]{
			Fields: map[string]lq.Accessor[models.Item]{
				"id":       func(i models.Item) any { return i.ID },
				"name":     func(i models.Item) any { return i.Name },
				"sku":      func(i models.Item) any { return i.SKU },
				"category": func(i models.Item) any { return i.Category },
				"price":    func(i models.Item) any { return i.Price },
				"stock":    func(i models.Item) any { return i.Stock },
				"status":   func(i models.Item) any { return i.Status },
			},
			SearchFields: []string{"name", "sku"},
			Filters: []lq.FilterField{
				multi("status", "Status", "Active", "Low Stock", "Out of Stock"),
				multi("category", "Category", "Electronics", "Accessories", "Bags", "Furniture", "Storage"),
				{ID: "price", Label: "Price", Kind: lq.KindText, Placeholder: "e.g. 50",
					Operators: []lq.Operator{lq.OpEquals, lq.OpGt, lq.OpGte, lq.OpLt, lq.OpLte, lq.OpBetween}},
			},
			Sorts: []lq.SortField{
				{ID: "name", Label: "Name", Kind: lq.SortText},
				{ID: "price", Label: "Price", Kind: lq.SortNumber},
				{ID: "stock", Label: "Stock Units", Kind: lq.SortNumber},
			},
			PageSize: 8,
		},
		Key: func(i models.Item) string { return strconv.Itoa(i.ID) },
		Columns: []Column{
			{ID: "name", Label: "Name", Width: 60},
			{ID: "sku", Label: "SKU", Width: 25},
			{ID: "category", Label: "Category", Width: 30},
			{ID: "price", Label: "Price", Width: 25},
			{ID: "stock", Label: "Stock", Width: 20},
			{ID: "status", Label: "Status", Width: 30},
		},
		Stats: itemStats,
	}
}

func OrdersSpec() Spec[models.Order] {
	return Spec[models.Order]{
		Name:  "orders",
		Title: "Orders",
		Schema: lq.Schema[models.Order]{
			Fields: map[string]lq.Accessor[models.Order]{
				"id":       func(o models.Order) any { return o.ID },
				"customer": func(o models.Order) any { return o.Customer },
				"email":    func(o models.Order) any { return o.Email },
				"date":     func(o models.Order) any { return o.Date },
				"items":    func(o models.Order) any { return o.Items },
				"total":    func(o models.Order) any { return o.Total },
				"status":   func(o models.Order) any { return o.Status },
			},
			SearchFields: []string{"id", "customer"},
			Filters: []lq.FilterField{
				multi("status", "Status", "Pending", "Processing", "Shipped", "Delivered", "Cancelled"),
			},
			Sorts: []lq.SortField{
				{ID: "id", Label: "Order ID", Kind: lq.SortText},
				{ID: "total", Label: "Total", Kind: lq.SortNumber},
				{ID: "date", Label: "Date", Kind: lq.SortDate},
			},
			PageSize: 7,
		},
		Key: func(o models.Order) string { return o.ID },
		Columns: []Column{
			{ID: "id", Label: "Order", Width: 25},
			{ID: "customer", Label: "Customer", Width: 45},
			{ID: "date", Label: "Date", Width: 30},
			{ID: "items", Label: "Items", Width: 15},
			{ID: "total", Label: "Total", Width: 25},
			{ID: "status", Label: "Status", Width: 30},
		},
		Stats: orderStats,
	}
}

func ProjectsSpec() Spec[models.Project] {
	return Spec[models.Project]{
		Name:  "projects",
		Title: "Projects",
		Schema: lq.Schema[models.Project]{
			Fields: map[string]lq.Accessor[models.Project]{
				"id":       func(p models.Project) any { return p.ID },
				"name":     func(p models.Project) any { return p.Name },
				"status":   func(p models.Project) any { return p.Status },
				"priority": func(p models.Project) any { return p.Priority },
				"progress": func(p models.Project) any { return p.Progress },
				"team":     func(p models.Project) any { return p.Team },
				"dueDate":  func(p models.Project) any { return p.DueDate },
				"tag":      func(p models.Project) any { return p.Tag },
			},
			SearchFields: []string{"name"},
			Filters: []lq.FilterField{
				multi("status", "Status", "On Track", "At Risk", "Completed", "Blocked"),
				multi("priority", "Priority", "Critical", "High", "Medium", "Low"),
			},
			Sorts: []lq.SortField{
				{ID: "name", Label: "Name", Kind: lq.SortText},
				{ID: "progress", Label: "Progress", Kind: lq.SortNumber},
				{ID: "dueDate", Label: "Due Date", Kind: lq.SortDate},
			},
			PageSize: 6,
		},
		Key: func(p models.Project) string { return strconv.Itoa(p.ID) },
		Columns: []Column{
			{ID: "name", Label: "Project", Width: 55},
			{ID: "status", Label: "Status", Width: 25},
			{ID: "priority", Label: "Priority", Width: 22},
			{ID: "progress", Label: "Progress", Width: 20},
			{ID: "team", Label: "Team", Width: 15},
			{ID: "dueDate", Label: "Due", Width: 28},
			{ID: "tag", Label: "Tag", Width: 25},
		},
		Stats: projectStats,
	}
}

func TeamSpec() Spec[models.TeamMember] {
	return Spec[models.TeamMember]{
		Name:  "team",
		Title: "Team",
		Schema: lq.Schema[models.TeamMember]{
			Fields: map[string]lq.Accessor[models.TeamMember]{
				"id":         func(m models.TeamMember) any { return m.ID },
				"name":       func(m models.TeamMember) any { return m.Name },
				"email":      func(m models.TeamMember) any { return m.Email },
				"department": func(m models.TeamMember) any { return m.Dept },
				"role":       func(m models.TeamMember) any { return m.Role },
				"status":     func(m models.TeamMember) any { return m.Status },
				"joined":     func(m models.TeamMember) any { return m.Joined },
			},
			SearchFields: []string{"name", "email"},
			Filters: []lq.FilterField{
				multi("status", "Status", "Active", "On Leave", "Inactive"),
				multi("department", "Department", "Engineering", "Design", "Product", "Marketing", "Operations", "Finance", "Sales", "Support"),
			},
			Sorts: []lq.SortField{
				{ID: "name", Label: "Name", Kind: lq.SortText},
				{ID: "joined", Label: "Joined Date", Kind: lq.SortDate},
			},
			PageSize: 8,
		},
		Key: func(m models.TeamMember) string { return strconv.Itoa(m.ID) },
		Columns: []Column{
			{ID: "name", Label: "Name", Width: 40},
			{ID: "email", Label: "Email", Width: 45},
			{ID: "department", Label: "Department", Width: 30},
			{ID: "role", Label: "Role", Width: 35},
			{ID: "status", Label: "Status", Width: 20},
			{ID: "joined", Label: "Joined", Width: 20},
		},
		Stats: teamStats,
	}
}

func ReportsSpec() Spec[models.Report] {
	return Spec[models.Report]{
		Name:  "reports",
		Title: "Reports",
		Schema: lq.Schema[models.Report]{
			Fields: map[string]lq.Accessor[models.Report]{
				"id":        func(r models.Report) any { return r.ID },
				"name":      func(r models.Report) any { return r.Name },
				"type":      func(r models.Report) any { return r.Type },
				"status":    func(r models.Report) any { return r.Status },
				"generated": func(r models.Report) any { return r.Generated },
				"size":      func(r models.Report) any { return r.Size },
				"author":    func(r models.Report) any { return r.Author },
			},
			SearchFields: []string{"name"},
			Filters: []lq.FilterField{
				multi("type", "Type", "Financial", "Sales", "Operations", "HR", "Security"),
				multi("status", "Status", "Ready", "Generating", "Scheduled"),
			},
			Sorts: []lq.SortField{
				{ID: "name", Label: "Name", Kind: lq.SortText},
				{ID: "generated", Label: "Date", Kind: lq.SortText},
			},
			PageSize: 6,
		},
		Key: func(r models.Report) string { return strconv.Itoa(r.ID) },
		Columns: []Column{
			{ID: "name", Label: "Report", Width: 60},
			{ID: "type", Label: "Type", Width: 25},
			{ID: "status", Label: "Status", Width: 25},
			{ID: "generated", Label: "Generated", Width: 28},
			{ID: "size", Label: "Size", Width: 18},
			{ID: "author", Label: "Author", Width: 34},
		},
		Stats: reportStats,
	}
}

func TasksSpec() Spec[models.Task] {
	return Spec[models.Task]{
		Name:  "tasks",
		Title: "Tasks",
		Schema: lq.Schema[models.Task]{
			Fields: map[string]lq.Accessor[models.Task]{
				"id":       func(t models.Task) any { return t.ID },
				"title":    func(t models.Task) any { return t.Title },
				"priority": func(t models.Task) any { return t.Priority },
				"due":      func(t models.Task) any { return t.Due },
				"status":   func(t models.Task) any { return t.State() },
				"assignee": func(t models.Task) any { return t.Assignee },
			},
			SearchFields: []string{"title", "assignee"},
			Filters: []lq.FilterField{
				multi("status", "Status", "Pending", "Completed"),
				multi("priority", "Priority", "High", "Medium", "Low"),
			},
			Sorts: []lq.SortField{
				{ID: "title", Label: "Title", Kind: lq.SortText},
				{ID: "priority", Label: "Priority", Kind: lq.SortText},
			},
			PageSize: 10,
		},
		Key: func(t models.Task) string { return strconv.Itoa(t.ID) },
		Columns: []Column{
			{ID: "title", Label: "Task", Width: 80},
			{ID: "priority", Label: "Priority", Width: 25},
			{ID: "due", Label: "Due", Width: 25},
			{ID: "status", Label: "Status", Width: 25},
			{ID: "assignee", Label: "Assignee", Width: 20},
		},
		Stats: taskStats,
	}
}

func ActivitySpec() Spec[models.Activity] {
	return Spec[models.Activity]{
		Name:  "activity",
		Title: "Recent Activity",
		Schema: lq.Schema[models.Activity]{
			Fields: map[string]lq.Accessor[models.Activity]{
				"id":        func(a models.Activity) any { return a.ID },
				"type":      func(a models.Activity) any { return a.Type },
				"timestamp": func(a models.Activity) any { return a.Timestamp },
				"message":   func(a models.Activity) any { return a.Message },
				"user":      func(a models.Activity) any { return a.User },
			},
			SearchFields: []string{"message", "user"},
			Filters: []lq.FilterField{
				multi("type", "Type", "order", "alert", "deploy", "user"),
			},
			Sorts: []lq.SortField{
				{ID: "timestamp", Label: "Time", Kind: lq.SortDate},
			},
			PageSize: 5,
		},
		Key: func(a models.Activity) string { return a.ID },
		Columns: []Column{
			{ID: "timestamp", Label: "Time", Width: 45},
			{ID: "type", Label: "Type", Width: 20},
			{ID: "message", Label: "Message", Width: 90},
			{ID: "user", Label: "Source", Width: 35},
		},
		Stats: activityStats,
	}
}
