package repositories

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

type SalesRepositoryInterface interface {
	GetHistory() ([]models.SalesHistoryRecord, error)
	ArchiveFinished(date time.Time) (*models.SalesHistoryRecord, error)
}

type SalesRepository struct {
	logger *logger.Logger
	store  *jsonstore.Store
}

func NewSalesRepository(log *logger.Logger, store *jsonstore.Store) *SalesRepository {
	return &SalesRepository{
		logger: log.WithComponent("sales_repository"),
		store:  store,
	}
}

// GetHistory retrieves all settlement records, oldest first
func (r *SalesRepository) GetHistory() ([]models.SalesHistoryRecord, error) {
	r.logger.Debug("Retrieving sales history")

	var history []models.SalesHistoryRecord
	err := r.store.View(func(doc *jsonstore.Document) error {
		history = doc.SalesHistory
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read sales history", "error", err)
		return nil, err
	}

	return history, nil
}

// ArchiveFinished is the settlement transaction: it appends a history
// record covering every finished order and prunes those orders from the
// active list, all within a single document write. Pending orders are
// retained untouched. When no order is finished, nothing is written and
// no record is returned.
func (r *SalesRepository) ArchiveFinished(date time.Time) (*models.SalesHistoryRecord, error) {
	r.logger.Debug("Archiving finished orders")

	var record *models.SalesHistoryRecord
	err := r.store.Update(func(doc *jsonstore.Document) error {
		finished := make([]models.Order, 0)
		remaining := make([]models.Order, 0, len(doc.Orders))
		for _, order := range doc.Orders {
			if order.Status == models.OrderStatusFinished {
				finished = append(finished, order)
			} else {
				remaining = append(remaining, order)
			}
		}

		if len(finished) == 0 {
			return jsonstore.ErrNoChange
		}

		total := decimal.Zero
		for _, order := range finished {
			total = total.Add(order.Total)
		}

		entry := models.SalesHistoryRecord{
			Date:   date,
			Total:  total,
			Orders: finished,
		}
		doc.SalesHistory = append(doc.SalesHistory, entry)
		doc.Orders = remaining

		record = &entry
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to archive finished orders", "error", err)
		return nil, err
	}

	if record == nil {
		r.logger.Info("No finished orders to archive")
		return nil, nil
	}

	r.logger.Info("Archived finished orders",
		"archived_count", len(record.Orders),
		"total", record.Total)
	return record, nil
}
