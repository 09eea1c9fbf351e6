package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dashkit/internal/domain/models"
)

// ErrNoDB is returned when a table source has no connection.
var ErrNoDB = errors.New("database not configured")

// TableSource loads a collection with one SELECT whose columns match the
// db tags of T.
type TableSource[T any] struct {
	DB    *sqlx.DB
	Table string
	Query string
}

func (s TableSource[T]) All(ctx context.Context) ([]T, error) {
	if s.DB == nil {
		return nil, ErrNoDB
	}
	out := []T{}
	if err := s.DB.SelectContext(ctx, &out, s.Query); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Table, err)
	}
	return out, nil
}

func ItemsTable(db *sqlx.DB) TableSource[models.Item] {
	return TableSource[models.Item]{DB: db, Table: "items", Query: `
		SELECT id, name, sku, category, price, stock, status
		FROM items ORDER BY id`}
}

func OrdersTable(db *sqlx.DB) TableSource[models.Order] {
	return TableSource[models.Order]{DB: db, Table: "orders", Query: `
		SELECT id, customer, COALESCE(email,'') AS email,
		       DATE_FORMAT(order_date, '%b %e, %Y') AS order_date,
		       items, total, status
		FROM orders ORDER BY order_date DESC, id DESC`}
}

func ProjectsTable(db *sqlx.DB) TableSource[models.Project] {
	return TableSource[models.Project]{DB: db, Table: "projects", Query: `
		SELECT id, name, COALESCE(description,'') AS description, status, priority,
		       progress, team_size, DATE_FORMAT(due_date, '%b %e, %Y') AS due_date,
		       COALESCE(tag,'') AS tag
		FROM projects ORDER BY id`}
}

func TeamTable(db *sqlx.DB) TableSource[models.TeamMember] {
	return TableSource[models.TeamMember]{DB: db, Table: "team_members", Query: `
		SELECT id, name, email, department, role, status,
		       DATE_FORMAT(joined_on, '%b %Y') AS joined
		FROM team_members ORDER BY id`}
}

func ReportsTable(db *sqlx.DB) TableSource[models.Report] {
	return TableSource[models.Report]{DB: db, Table: "reports", Query: `
		SELECT id, name, type, status, COALESCE(generated,'') AS generated,
		       COALESCE(size,'') AS size, COALESCE(author,'') AS author
		FROM reports ORDER BY id`}
}

func TasksTable(db *sqlx.DB) TableSource[models.Task] {
	return TableSource[models.Task]{DB: db, Table: "tasks", Query: `
		SELECT id, title, priority, due, done, COALESCE(assignee,'') AS assignee
		FROM tasks ORDER BY id`}
}

func ActivityTable(db *sqlx.DB) TableSource[models.Activity] {
	return TableSource[models.Activity]{DB: db, Table: "activity", Query: `
		SELECT id, type, occurred_at, message, actor
		FROM activity ORDER BY occurred_at DESC`}
}
