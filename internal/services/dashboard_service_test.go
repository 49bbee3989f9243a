package services

import (
	"context"
	"testing"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/stretchr/testify/assert"
)

type fakeEntityCounter int

func (c fakeEntityCounter) Count() (int, error) { return int(c), nil }

type fakeStatusCounter []models.StatusCount

func (c fakeStatusCounter) StatusCounts() ([]models.StatusCount, error) { return c, nil }

type fakeRevenueReader struct {
	fakeStatusCounter
	invoiced  int64
	collected int64
}

func (r fakeRevenueReader) RevenueTotals() (int64, int64, error) {
	return r.invoiced, r.collected, nil
}

type fakeOrderStats repository.OrderStats

func (s fakeOrderStats) Stats() (*repository.OrderStats, error) {
	stats := repository.OrderStats(s)
	return &stats, nil
}

func TestCommercialDashboard_SequencesPerDocType(t *testing.T) {
	sequences := newMemorySequenceStore()
	ctx := context.Background()
	year := time.Now().Year()

	// Three quotes and one contract numbered this year.
	for i := 0; i < 3; i++ {
		_, err := sequences.NextSequence(ctx, models.DocTypeQuote, year)
		assert.NoError(t, err)
	}
	_, err := sequences.NextSequence(ctx, models.DocTypeContract, year)
	assert.NoError(t, err)

	svc := NewDashboardService(
		fakeEntityCounter(5),
		fakeStatusCounter{{Status: "pending", Count: 2}},
		fakeRevenueReader{invoiced: 100000, collected: 40000},
		fakeStatusCounter{},
		fakeOrderStats{},
		fakeEntityCounter(0),
		fakeEntityCounter(0),
		sequences,
	)

	dashboard, err := svc.Commercial(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, dashboard.Sequences["DEV"])
	assert.Equal(t, 1, dashboard.Sequences["CTR"])
	assert.Equal(t, 0, dashboard.Sequences["PRO"], "unused sequences read as zero")
	assert.Equal(t, 0, dashboard.Sequences["FAC"])
	assert.Equal(t, 5, dashboard.Partners)
	assert.Equal(t, int64(60000), dashboard.OutstandingDue)
}

func TestCommercialDashboard_OutstandingNeverNegative(t *testing.T) {
	svc := NewDashboardService(
		fakeEntityCounter(0),
		fakeStatusCounter{},
		fakeRevenueReader{invoiced: 10000, collected: 25000},
		fakeStatusCounter{},
		fakeOrderStats{},
		fakeEntityCounter(0),
		fakeEntityCounter(0),
		newMemorySequenceStore(),
	)

	dashboard, err := svc.Commercial(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), dashboard.OutstandingDue, "overpayments must not report negative outstanding")
}

func TestAdminDashboard_Aggregates(t *testing.T) {
	svc := NewDashboardService(
		fakeEntityCounter(0),
		fakeStatusCounter{},
		fakeRevenueReader{},
		fakeStatusCounter{},
		fakeOrderStats{TotalOrders: 12, PendingOrders: 3, PaidRevenue: 450000},
		fakeEntityCounter(40),
		fakeEntityCounter(18),
		newMemorySequenceStore(),
	)

	stats, err := svc.Admin()
	assert.NoError(t, err)
	assert.Equal(t, 12, stats.TotalOrders)
	assert.Equal(t, 3, stats.PendingOrders)
	assert.Equal(t, int64(450000), stats.PaidRevenue)
	assert.Equal(t, 40, stats.TotalUsers)
	assert.Equal(t, 18, stats.TotalProducts)
}
