package catalog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"dashkit/internal/db"
	"dashkit/internal/domain/models"
	"dashkit/internal/repositories"
)

// Sources holds one record source per collection.
type Sources struct {
	Items    repositories.Source[models.Item]
	Orders   repositories.Source[models.Order]
	Projects repositories.Source[models.Project]
	Team     repositories.Source[models.TeamMember]
	Reports  repositories.Source[models.Report]
	Tasks    repositories.Source[models.Task]
	Activity repositories.Source[models.Activity]
}

// FixtureSources serves the seeded dashboard data.
func FixtureSources() Sources {
	return Sources{
		Items:    repositories.NewStaticSource(SeedItems()),
		Orders:   repositories.NewStaticSource(SeedOrders()),
		Projects: repositories.NewStaticSource(SeedProjects()),
		Team:     repositories.NewStaticSource(SeedTeam()),
		Reports:  repositories.NewStaticSource(SeedReports()),
		Tasks:    repositories.NewStaticSource(SeedTasks()),
		Activity: repositories.NewStaticSource(SeedActivity()),
	}
}

// DatabaseSources swaps in a MySQL snapshot for every collection whose
// table exists; the others keep their fallback source.
func DatabaseSources(ctx context.Context, conn *sqlx.DB, fallback Sources) Sources {
	out := fallback
	if conn == nil {
		return out
	}
	out.Items = pick(ctx, conn, repositories.ItemsTable(conn), fallback.Items)
	out.Orders = pick(ctx, conn, repositories.OrdersTable(conn), fallback.Orders)
	out.Projects = pick(ctx, conn, repositories.ProjectsTable(conn), fallback.Projects)
	out.Team = pick(ctx, conn, repositories.TeamTable(conn), fallback.Team)
	out.Reports = pick(ctx, conn, repositories.ReportsTable(conn), fallback.Reports)
	out.Tasks = pick(ctx, conn, repositories.TasksTable(conn), fallback.Tasks)
	out.Activity = pick(ctx, conn, repositories.ActivityTable(conn), fallback.Activity)
	return out
}

func pick[T any](ctx context.Context, conn *sqlx.DB, table repositories.TableSource[T], fallback repositories.Source[T]) repositories.Source[T] {
	if !db.HasTable(ctx, conn, table.Table) {
		log.Info().Str("table", table.Table).Msg("table missing, serving fixtures")
		return fallback
	}
	return repositories.NewSnapshotSource[T](table)
}

// Catalog is the set of dashboard collections, typed and by name.
type Catalog struct {
	Items    *Collection[models.Item]
	Orders   *Collection[models.Order]
	Projects *Collection[models.Project]
	Team     *Collection[models.TeamMember]
	Reports  *Collection[models.Report]
	Tasks    *Collection[models.Task]
	Activity *Collection[models.Activity]

	Registry *Registry
}

// New builds every collection over src and registers it.
func New(src Sources, memoSize int) (*Catalog, error) {
	c := &Catalog{Registry: NewRegistry()}
	var err error
	if c.Items, err = register(c.Registry, ItemsSpec(), src.Items, memoSize); err != nil {
		return nil, err
	}
	if c.Orders, err = register(c.Registry, OrdersSpec(), src.Orders, memoSize); err != nil {
		return nil, err
	}
	if c.Projects, err = register(c.Registry, ProjectsSpec(), src.Projects, memoSize); err != nil {
		return nil, err
	}
	if c.Team, err = register(c.Registry, TeamSpec(), src.Team, memoSize); err != nil {
		return nil, err
	}
	if c.Reports, err = register(c.Registry, ReportsSpec(), src.Reports, memoSize); err != nil {
		return nil, err
	}
	if c.Tasks, err = register(c.Registry, TasksSpec(), src.Tasks, memoSize); err != nil {
		return nil, err
	}
	if c.Activity, err = register(c.Registry, ActivitySpec(), src.Activity, memoSize); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T any](r *Registry, spec Spec[T], src repositories.Source[T], memoSize int) (*Collection[T], error) {
	col, err := NewCollection(spec, src, memoSize)
	if err != nil {
		return nil, err
	}
	if err := r.Register(col); err != nil {
		return nil, err
	}
	return col, nil
}
