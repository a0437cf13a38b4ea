package services

import (
	"context"
	"fmt"

	"github.com/isdelr/phishstats/internal/models"
	"github.com/jmoiron/sqlx"
)

// EventServiceProvider defines the interface for the per-user event tables
// (password-change dates and observed IPs).
type EventServiceProvider interface {
	GetAllDates(ctx context.Context) ([]models.DateEvent, error)
	GetDatesByUser(ctx context.Context) (map[int64][]string, error)
	GetAllIPs(ctx context.Context) ([]models.IPEvent, error)
	CountDatesByUser(ctx context.Context) (map[int64]int, error)
	CountIPsByUser(ctx context.Context) (map[int64]int, error)
}

// EventService provides read access to the dates and ips tables.
type EventService struct {
	db *sqlx.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sqlx.DB) *EventService {
	return &EventService{db: db}
}

// GetAllDates returns every password-change date in insertion order.
func (s *EventService) GetAllDates(ctx context.Context) ([]models.DateEvent, error) {
	dates := []models.DateEvent{}
	query := "SELECT id, COALESCE(user_id, 0) AS user_id, COALESCE(date, '') AS date FROM dates ORDER BY id"
	if err := s.db.SelectContext(ctx, &dates, query); err != nil {
		return nil, fmt.Errorf("select dates: %w", err)
	}
	return dates, nil
}

// GetDatesByUser groups the password-change dates by user id.
func (s *EventService) GetDatesByUser(ctx context.Context) (map[int64][]string, error) {
	dates, err := s.GetAllDates(ctx)
	if err != nil {
		return nil, err
	}
	byUser := make(map[int64][]string)
	for _, d := range dates {
		byUser[d.UserID] = append(byUser[d.UserID], d.Date)
	}
	return byUser, nil
}

// GetAllIPs returns every observed IP in insertion order.
func (s *EventService) GetAllIPs(ctx context.Context) ([]models.IPEvent, error) {
	ips := []models.IPEvent{}
	query := "SELECT id, COALESCE(user_id, 0) AS user_id, COALESCE(ip, '') AS ip FROM ips ORDER BY id"
	if err := s.db.SelectContext(ctx, &ips, query); err != nil {
		return nil, fmt.Errorf("select ips: %w", err)
	}
	return ips, nil
}

// CountDatesByUser counts non-null dates per user that has at least one.
func (s *EventService) CountDatesByUser(ctx context.Context) (map[int64]int, error) {
	return s.countByUser(ctx, "dates", "date")
}

// CountIPsByUser counts non-null IPs per user that has at least one.
func (s *EventService) CountIPsByUser(ctx context.Context) (map[int64]int, error) {
	return s.countByUser(ctx, "ips", "ip")
}

func (s *EventService) countByUser(ctx context.Context, table, column string) (map[int64]int, error) {
	var rows []struct {
		UserID int64 `db:"user_id"`
		N      int   `db:"n"`
	}
	query := fmt.Sprintf("SELECT user_id, COUNT(%s) AS n FROM %s WHERE user_id IS NOT NULL GROUP BY user_id", column, table)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count %s by user: %w", table, err)
	}
	counts := make(map[int64]int, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.N
	}
	return counts, nil
}
