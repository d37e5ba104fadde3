package repository

import (
	"sort"
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// DashboardStats is the aggregate snapshot served to the dashboard.
// Revenue sums the price of every project regardless of status, which
// is what the dashboard has always shown.
type DashboardStats struct {
	TotalClients      int              `json:"totalClients"`
	ActiveProjects    int              `json:"activeProjects"`
	PendingFollowUps  int              `json:"pendingFollowUps"`
	OverdueFollowUps  int              `json:"overdueFollowUps"`
	TotalRevenue      float64          `json:"totalRevenue"`
	RecentProjects    []model.Project  `json:"recentProjects"`
	UpcomingFollowUps []model.FollowUp `json:"upcomingFollowUps"`
}

// AnalyticsRepo derives dashboard counters from the main collections.
// Nothing is cached or maintained incrementally: every call rescans
// the store, which is fine at the data volumes this system serves.
type AnalyticsRepo struct {
	store *store.Store
	now   func() time.Time
}

// NewAnalyticsRepo constructs an AnalyticsRepo over the given store.
func NewAnalyticsRepo(s *store.Store) *AnalyticsRepo {
	return &AnalyticsRepo{store: s, now: time.Now}
}

// Dashboard computes the aggregate snapshot at call time.  A pending
// follow-up counts as overdue when its due date lies strictly before
// now.
func (r *AnalyticsRepo) Dashboard() DashboardStats {
	now := r.now().UTC()

	stats := DashboardStats{
		TotalClients:      r.store.Clients.Len(),
		RecentProjects:    []model.Project{},
		UpcomingFollowUps: []model.FollowUp{},
	}

	projects := r.store.Projects.List()
	for _, p := range projects {
		if p.Status == model.StatusInProgress {
			stats.ActiveProjects++
		}
		stats.TotalRevenue += p.Price
	}

	// Five most recently requested projects, newest first.
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].DateRequested.After(projects[j].DateRequested)
	})
	if len(projects) > 5 {
		projects = projects[:5]
	}
	stats.RecentProjects = projects

	var pending []model.FollowUp
	for _, f := range r.store.FollowUps.List() {
		if f.Status != model.FollowUpPending {
			continue
		}
		stats.PendingFollowUps++
		if f.DueDate.Before(now) {
			stats.OverdueFollowUps++
		}
		pending = append(pending, f)
	}

	// Five soonest-due pending follow-ups, earliest first.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})
	if len(pending) > 5 {
		pending = pending[:5]
	}
	if pending != nil {
		stats.UpcomingFollowUps = pending
	}
	return stats
}
