package controllers

import (
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// AdminSummary returns collection counts and total revenue.
// GET /admin-states
func (s *StatsController) AdminSummary(c *ctx.Context) {
	summary, err := s.stats.AdminSummary(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(summary)
}

// CategoryStats returns the per-category quantity/revenue breakdown.
// GET /order/stats
func (s *StatsController) CategoryStats(c *ctx.Context) {
	stats, err := s.stats.CategoryStats(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(stats)
}
