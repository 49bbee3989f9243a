package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
)

// Read-only aggregation surfaces behind the dashboards. The repositories
// implement them; tests substitute fakes.
type entityCounter interface {
	Count() (int, error)
}

type statusCounter interface {
	StatusCounts() ([]models.StatusCount, error)
}

type revenueReader interface {
	statusCounter
	RevenueTotals() (invoiced int64, collected int64, err error)
}

type orderStatsReader interface {
	Stats() (*repository.OrderStats, error)
}

type sequenceReader interface {
	CurrentSequence(ctx context.Context, docType models.DocType, year int) (int, error)
}

// DashboardService aggregates the read-only counters behind the admin and
// commercial dashboards.
type DashboardService struct {
	partners  entityCounter
	quotes    statusCounter
	invoices  revenueReader
	contracts statusCounter
	orders    orderStatsReader
	users     entityCounter
	products  entityCounter
	sequences sequenceReader
}

func NewDashboardService(
	partners entityCounter,
	quotes statusCounter,
	invoices revenueReader,
	contracts statusCounter,
	orders orderStatsReader,
	users entityCounter,
	products entityCounter,
	sequences sequenceReader,
) *DashboardService {
	return &DashboardService{
		partners:  partners,
		quotes:    quotes,
		invoices:  invoices,
		contracts: contracts,
		orders:    orders,
		users:     users,
		products:  products,
		sequences: sequences,
	}
}

// Commercial builds the B2B dashboard. Outstanding is what final invoices
// still owe, never negative.
func (s *DashboardService) Commercial(ctx context.Context) (*models.CommercialDashboard, error) {
	partnerCount, err := s.partners.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count partners: %w", err)
	}

	quoteCounts, err := s.quotes.StatusCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}
	invoiceCounts, err := s.invoices.StatusCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}
	contractCounts, err := s.contracts.StatusCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count contracts: %w", err)
	}

	invoiced, collected, err := s.invoices.RevenueTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue totals: %w", err)
	}
	outstanding := invoiced - collected
	if outstanding < 0 {
		outstanding = 0
	}

	year := time.Now().Year()
	sequences := make(map[string]int, 4)
	for _, docType := range []models.DocType{
		models.DocTypeQuote, models.DocTypeProforma, models.DocTypeInvoice, models.DocTypeContract,
	} {
		current, err := s.sequences.CurrentSequence(ctx, docType, year)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s sequence: %w", docType, err)
		}
		sequences[docType.Code()] = current
	}

	return &models.CommercialDashboard{
		Partners:       partnerCount,
		Quotes:         quoteCounts,
		Invoices:       invoiceCounts,
		Contracts:      contractCounts,
		InvoicedTotal:  invoiced,
		CollectedTotal: collected,
		OutstandingDue: outstanding,
		Sequences:      sequences,
	}, nil
}

// AdminStats is the storefront side of the admin home page.
type AdminStats struct {
	TotalOrders   int   `json:"total_orders"`
	PendingOrders int   `json:"pending_orders"`
	PaidRevenue   int64 `json:"paid_revenue"`
	TotalUsers    int   `json:"total_users"`
	TotalProducts int   `json:"total_products"`
}

func (s *DashboardService) Admin() (*AdminStats, error) {
	orderStats, err := s.orders.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute order stats: %w", err)
	}
	userCount, err := s.users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	productCount, err := s.products.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	return &AdminStats{
		TotalOrders:   orderStats.TotalOrders,
		PendingOrders: orderStats.PendingOrders,
		PaidRevenue:   orderStats.PaidRevenue,
		TotalUsers:    userCount,
		TotalProducts: productCount,
	}, nil
}
