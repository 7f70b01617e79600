package domain_test

import (
	"testing"
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewLowStockAlert(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	item := domain.Item{Name: "Paracetamol 500mg", MinStock: 10, CurrentStock: 5}

	alert := domain.NewLowStockAlert("n-1", item, at)

	assert.Equal(t, "n-1", alert.NotificationID)
	assert.Equal(t, domain.SeverityWarning, alert.Severity)
	assert.Equal(t, "Stock alert", alert.Title)
	assert.Equal(t, "Item Paracetamol 500mg reached critical level (5)", alert.Message)
	assert.Equal(t, at, alert.Timestamp)
	assert.False(t, alert.Read)
}
