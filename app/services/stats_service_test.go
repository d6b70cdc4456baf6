package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
)

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) EstimatedCount(context.Context) (int64, error) { return f.n, f.err }

type fakePaymentSource struct {
	payments []models.Payment
	err      error
}

func (f fakePaymentSource) All(context.Context) ([]models.Payment, error) {
	return f.payments, f.err
}

type fakeMenuSource struct {
	items []models.MenuItem
	err   error
}

func (f fakeMenuSource) All(context.Context) ([]models.MenuItem, error) {
	return f.items, f.err
}

func TestAdminSummary(t *testing.T) {
	payments := fakePaymentSource{payments: []models.Payment{
		{Price: 10},
		{Price: 5.5},
		{Price: 0},
	}}

	svc := NewStatsService(
		fakeCounter{n: 7},
		fakeCounter{n: 12},
		fakeCounter{n: 3},
		payments,
		fakeMenuSource{},
	)

	summary, err := svc.AdminSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), summary.Users)
	assert.Equal(t, int64(12), summary.MenuItems)
	assert.Equal(t, int64(3), summary.Orders)
	assert.Equal(t, 15.5, summary.Revenue)
}

func TestAdminSummaryEmptyCollections(t *testing.T) {
	svc := NewStatsService(fakeCounter{}, fakeCounter{}, fakeCounter{}, fakePaymentSource{}, fakeMenuSource{})

	summary, err := svc.AdminSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.AdminSummary{}, summary)
}

func TestAdminSummaryCounterError(t *testing.T) {
	svc := NewStatsService(
		fakeCounter{err: errors.New("mongo down")},
		fakeCounter{},
		fakeCounter{},
		fakePaymentSource{},
		fakeMenuSource{},
	)

	_, err := svc.AdminSummary(context.Background())
	assert.Error(t, err)
}

func TestCategoryStatsGroupsAndSums(t *testing.T) {
	tart := models.MenuItem{ID: primitive.NewObjectID(), Category: "dessert", Price: 4.5}
	cake := models.MenuItem{ID: primitive.NewObjectID(), Category: "dessert", Price: 3.5}
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Category: "pizza", Price: 9.5}

	payments := fakePaymentSource{payments: []models.Payment{
		{MenuIDs: []string{tart.ID.Hex(), pizza.ID.Hex()}},
		{MenuIDs: []string{cake.ID.Hex()}},
	}}
	items := fakeMenuSource{items: []models.MenuItem{tart, cake, pizza}}

	svc := NewStatsService(fakeCounter{}, fakeCounter{}, fakeCounter{}, payments, items)

	stats, err := svc.CategoryStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.CategoryStat{
		{Category: "dessert", Quantity: 2, Revenue: 8.0},
		{Category: "pizza", Quantity: 1, Revenue: 9.5},
	}, stats)
}

func TestCategoryStatsExcludesUnresolvedMenuIDs(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Category: "pizza", Price: 9.5}
	deleted := primitive.NewObjectID()

	payments := fakePaymentSource{payments: []models.Payment{
		{MenuIDs: []string{pizza.ID.Hex(), deleted.Hex(), "not-an-id"}},
	}}
	items := fakeMenuSource{items: []models.MenuItem{pizza}}

	svc := NewStatsService(fakeCounter{}, fakeCounter{}, fakeCounter{}, payments, items)

	stats, err := svc.CategoryStats(context.Background())
	require.NoError(t, err)

	// Ids that no longer resolve contribute to neither quantity nor revenue.
	assert.Equal(t, []models.CategoryStat{
		{Category: "pizza", Quantity: 1, Revenue: 9.5},
	}, stats)
}

func TestCategoryStatsNoPayments(t *testing.T) {
	svc := NewStatsService(fakeCounter{}, fakeCounter{}, fakeCounter{}, fakePaymentSource{}, fakeMenuSource{})

	stats, err := svc.CategoryStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
