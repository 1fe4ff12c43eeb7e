// Package report aggregates the append-only sales log into the figures
// the admin dashboard shows: headline KPIs, a daily revenue trend and
// revenue broken down by service and by category.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bellezapura/salon-api/internal/repository"
)

type Period string

const (
	PeriodToday  Period = "today"
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	PeriodMonth  Period = "month"
	PeriodAll    Period = "all"
)

// Summary is the dashboard payload for one period.
type Summary struct {
	Period      Period           `json:"period"`
	TotalSales  float64          `json:"total_sales"`
	SalesCount  int              `json:"sales_count"`
	AverageSale float64          `json:"average_sale"`
	Trend       []TrendPoint     `json:"trend"`
	ByService   []ServiceRevenue `json:"by_service"`
	ByCategory  []CategorySlice  `json:"by_category"`
}

// TrendPoint is one day's revenue, keyed YYYY-MM-DD.
type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type ServiceRevenue struct {
	ServiceName string  `json:"service_name"`
	Revenue     float64 `json:"revenue"`
	Count       int     `json:"count"`
}

type CategorySlice struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type Service struct {
	saleRepo    repository.SaleRepository
	serviceRepo repository.ServiceRepository
}

func NewService(saleRepo repository.SaleRepository, serviceRepo repository.ServiceRepository) *Service {
	return &Service{
		saleRepo:    saleRepo,
		serviceRepo: serviceRepo,
	}
}

// Summarize builds the full dashboard for the given period, computed as of
// now. Sales reference services by name only, so a sale for a renamed or
// deleted service falls into the "Outros" category bucket.
func (s *Service) Summarize(ctx context.Context, period Period) (*Summary, error) {
	cutoff, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Period: period}
	byDay := make(map[string]float64)
	byService := make(map[string]*ServiceRevenue)
	byCategory := make(map[string]float64)

	for _, sale := range sales {
		if !cutoff.IsZero() && sale.Date.Before(cutoff) {
			continue
		}

		summary.TotalSales += sale.Amount
		summary.SalesCount++

		day := sale.Date.Format("2006-01-02")
		byDay[day] += sale.Amount

		rev, ok := byService[sale.ServiceName]
		if !ok {
			rev = &ServiceRevenue{ServiceName: sale.ServiceName}
			byService[sale.ServiceName] = rev
		}
		rev.Revenue += sale.Amount
		rev.Count++

		category, ok := categories[sale.ServiceName]
		if !ok {
			category = "Outros"
		}
		byCategory[category] += sale.Amount
	}

	if summary.SalesCount > 0 {
		summary.AverageSale = summary.TotalSales / float64(summary.SalesCount)
	}

	for day, revenue := range byDay {
		summary.Trend = append(summary.Trend, TrendPoint{Date: day, Revenue: revenue})
	}
	sort.Slice(summary.Trend, func(i, j int) bool {
		return summary.Trend[i].Date < summary.Trend[j].Date
	})

	for _, rev := range byService {
		summary.ByService = append(summary.ByService, *rev)
	}
	sort.Slice(summary.ByService, func(i, j int) bool {
		return summary.ByService[i].Revenue > summary.ByService[j].Revenue
	})

	for category, revenue := range byCategory {
		summary.ByCategory = append(summary.ByCategory, CategorySlice{Category: category, Revenue: revenue})
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Revenue > summary.ByCategory[j].Revenue
	})

	return summary, nil
}

// categoryIndex maps service name to category for the pie breakdown.
func (s *Service) categoryIndex(ctx context.Context) (map[string]string, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	index := make(map[string]string, len(services))
	for _, svc := range services {
		index[svc.Name] = svc.Category
	}
	return index, nil
}

// periodStart resolves a period to its inclusive lower bound. A zero time
// means no bound.
func periodStart(period Period, now time.Time) (time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case PeriodToday:
		return midnight, nil
	case Period7Days:
		return midnight.AddDate(0, 0, -6), nil
	case Period30Days:
		return midnight.AddDate(0, 0, -29), nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case PeriodAll:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unknown period: %s", period)
	}
}
