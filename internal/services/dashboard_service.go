package services

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"dashkit/internal/catalog"
	"dashkit/internal/domain/models"
	lq "dashkit/internal/listquery"
)

// HostProbe reports host resource usage in percent.
type HostProbe interface {
	MemoryUsed(ctx context.Context) (float64, error)
	DiskUsed(ctx context.Context) (float64, error)
}

// SystemProbe reads the local host through gopsutil.
type SystemProbe struct {
	// Path is the mount point whose usage is reported.
	Path string
}

func (p SystemProbe) MemoryUsed(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

func (p SystemProbe) DiskUsed(ctx context.Context) (float64, error) {
	path := p.Path
	if path == "" {
		path = "/"
	}
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, err
	}
	return u.UsedPercent, nil
}

// DashboardService serves the overview and the static dashboard pages.
type DashboardService struct {
	Catalog *catalog.Catalog
	Probe   HostProbe
	Now     func() time.Time
}

func healthStatus(v int) string {
	switch {
	case v >= 80:
		return "healthy"
	case v >= 50:
		return "warning"
	default:
		return "critical"
	}
}

// Health returns the service panel. Storage and memory come from the
// host probe when one is set; probe failures keep the fixture figures.
func (s DashboardService) Health(ctx context.Context) []models.HealthCheck {
	out := slices.Clone(fixtureHealth)
	if s.Probe == nil {
		return out
	}
	if used, err := s.Probe.DiskUsed(ctx); err == nil {
		v := int(math.Round(100 - used))
		out[3] = models.HealthCheck{Name: "Storage", Value: v, Status: healthStatus(v)}
	} else {
		log.Debug().Err(err).Msg("disk probe failed")
	}
	if used, err := s.Probe.MemoryUsed(ctx); err == nil {
		v := int(math.Round(100 - used))
		out = append(out, models.HealthCheck{Name: "Memory", Value: v, Status: healthStatus(v)})
	} else {
		log.Debug().Err(err).Msg("memory probe failed")
	}
	return out
}

func (s DashboardService) Overview(ctx context.Context) models.Dashboard {
	return models.Dashboard{
		Stats:        slices.Clone(overviewStats),
		Health:       s.Health(ctx),
		QuickActions: slices.Clone(quickActions),
	}
}

// ActivityPageSize is the page size of the overview timeline.
const ActivityPageSize = 5

// Activity pages the timeline newest first.
func (s DashboardService) Activity(ctx context.Context, pageIndex int) (lq.PageResult[models.Activity], error) {
	return s.Catalog.Activity.Page(ctx, lq.Query{
		Sort:      &lq.SortState{Field: "timestamp", Direction: lq.Desc},
		PageIndex: pageIndex,
		PageSize:  ActivityPageSize,
	})
}

func (DashboardService) Analytics() models.Analytics {
	return models.Analytics{
		Metrics:  slices.Clone(analyticsMetrics),
		TopPages: slices.Clone(topPages),
		Sources:  slices.Clone(trafficSources),
	}
}

func (DashboardService) Inbox() []models.Email { return slices.Clone(inbox) }

func (DashboardService) Messages() models.Messages {
	return models.Messages{Conversations: slices.Clone(conversations), Thread: slices.Clone(thread)}
}

// Calendar places the recurring events on the current month, dropping
// days the month does not have.
func (s DashboardService) Calendar() models.Calendar {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	days := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	events := make([]models.CalendarEvent, 0, len(calendarEvents))
	for _, e := range calendarEvents {
		if e.Day <= days {
			events = append(events, e)
		}
	}
	return models.Calendar{Year: now.Year(), Month: now.Month().String(), Events: events}
}

func (DashboardService) Support() models.Support {
	return models.Support{FAQs: slices.Clone(faqs), Categories: slices.Clone(supportCategories)}
}
