package services

import (
	"context"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/collection"
)

// Counter is a fast collection cardinality.
type Counter interface {
	EstimatedCount(ctx context.Context) (int64, error)
}

// PaymentSource reads the immutable payment collection.
type PaymentSource interface {
	All(ctx context.Context) ([]models.Payment, error)
}

// MenuSource reads the menu collection for the category join.
type MenuSource interface {
	All(ctx context.Context) ([]models.MenuItem, error)
}

// StatsService derives all figures from the persisted payment and menu
// collections on every call; there are no running counters to drift.
type StatsService struct {
	users    Counter
	menu     Counter
	orders   Counter
	payments PaymentSource
	items    MenuSource
}

func NewStatsService(users, menu, orders Counter, payments PaymentSource, items MenuSource) *StatsService {
	return &StatsService{
		users:    users,
		menu:     menu,
		orders:   orders,
		payments: payments,
		items:    items,
	}
}

// AdminSummary returns the dashboard headline block: estimated counts per
// collection plus total revenue folded over every payment record.
func (s *StatsService) AdminSummary(ctx context.Context) (models.AdminSummary, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return models.AdminSummary{}, err
	}

	menuItems, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return models.AdminSummary{}, err
	}

	orders, err := s.orders.EstimatedCount(ctx)
	if err != nil {
		return models.AdminSummary{}, err
	}

	payments, err := s.payments.All(ctx)
	if err != nil {
		return models.AdminSummary{}, err
	}

	return models.AdminSummary{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   sumPrices(payments),
	}, nil
}

// CategoryStats expands every payment's menu-id list, resolves each id
// against the current menu and groups the line items by category. Ids that
// no longer resolve are excluded from both quantity and revenue, so
// historical stats undercount items later removed from the menu. Output is
// sorted by category name.
func (s *StatsService) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	payments, err := s.payments.All(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.items.All(ctx)
	if err != nil {
		return nil, err
	}

	return categoryBreakdown(payments, items), nil
}

func sumPrices(payments []models.Payment) float64 {
	return collection.Sum(payments, func(p models.Payment) float64 { return p.Price })
}

func categoryBreakdown(payments []models.Payment, items []models.MenuItem) []models.CategoryStat {
	byID := collection.KeyBy(items, func(m models.MenuItem) string { return m.ID.Hex() })

	grouped := map[string]*models.CategoryStat{}
	for _, p := range payments {
		for _, menuID := range p.MenuIDs {
			item, ok := byID[menuID]
			if !ok {
				continue // deleted menu item: excluded by policy
			}

			stat, ok := grouped[item.Category]
			if !ok {
				stat = &models.CategoryStat{Category: item.Category}
				grouped[item.Category] = stat
			}
			stat.Quantity++
			stat.Revenue += item.Price
		}
	}

	out := make([]models.CategoryStat, 0, len(grouped))
	for _, stat := range grouped {
		out = append(out, *stat)
	}

	return collection.SortBy(out, func(a, b models.CategoryStat) bool {
		return a.Category < b.Category
	})
}
