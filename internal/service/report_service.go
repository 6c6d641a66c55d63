package service

import (
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
)

type ReportService struct {
	repo OrderRepository
}

func NewReportService(repo OrderRepository) *ReportService {
	return &ReportService{repo: repo}
}

// DailySales totals price times quantity over every item of every validated
// or completed order created on the given UTC day, alongside the order
// count. Pending orders and other restaurants are excluded.
func (s *ReportService) DailySales(restaurantID int, day time.Time) (*domain.DailySales, error) {
	sales, err := s.repo.DailySales(restaurantID, day)
	if err != nil {
		return nil, err
	}
	sales.TotalSales = Round2(sales.TotalSales)
	return sales, nil
}
