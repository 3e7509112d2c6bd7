package service

import (
	"time"

	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

type SalesServiceInterface interface {
	GetHistory() ([]models.SalesHistoryRecord, error)
	ResetDay() (*models.SalesHistoryRecord, error)
}

// SalesService owns the append-only settlement ledger
type SalesService struct {
	salesRepo repositories.SalesRepositoryInterface
	logger    *logger.Logger
	now       func() time.Time
}

func NewSalesService(salesRepo repositories.SalesRepositoryInterface, log *logger.Logger) *SalesService {
	return &SalesService{
		salesRepo: salesRepo,
		logger:    log.WithComponent("sales_service"),
		now:       time.Now,
	}
}

// GetHistory retrieves all settlement records in append order
func (s *SalesService) GetHistory() ([]models.SalesHistoryRecord, error) {
	s.logger.Info("Fetching sales history")

	history, err := s.salesRepo.GetHistory()
	if err != nil {
		s.logger.Error("Failed to fetch sales history", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched sales history", "count", len(history))
	return history, nil
}

// ResetDay archives every finished order into a new settlement record and
// clears them from the active queue; pending orders survive the reset.
// When nothing is finished the day's state is left untouched and no
// record is returned — callers decide whether that deserves a warning.
func (s *SalesService) ResetDay() (*models.SalesHistoryRecord, error) {
	s.logger.Info("Resetting day")

	record, err := s.salesRepo.ArchiveFinished(s.now().UTC())
	if err != nil {
		s.logger.Error("Failed to reset day", "error", err)
		return nil, err
	}

	if record == nil {
		s.logger.Info("Reset ran with no finished orders, nothing archived")
		return nil, nil
	}

	s.logger.Info("Day reset complete",
		"archived_orders", len(record.Orders),
		"settled_total", record.Total)
	return record, nil
}
