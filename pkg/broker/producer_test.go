package broker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lljaworski/invoicing/internal/entity"
)

func TestInvoiceEventMessage(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	event := entity.InvoiceEvent{
		Type:       entity.InvoiceEventPaid,
		InvoiceID:  id,
		Number:     "FV/2024/10/0001",
		Status:     entity.InvoiceStatusPaid,
		Subtotal:   decimal.RequireFromString("250.00"),
		VatAmount:  decimal.RequireFromString("50.00"),
		Total:      decimal.RequireFromString("300.00"),
		Currency:   entity.CurrencyPLN,
		OccurredAt: time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC),
	}

	m, err := invoiceEventMessage("invoice-events", event)
	require.NoError(t, err)
	require.Equal(t, "invoice-events", m.Topic)
	require.Equal(t, id.String(), string(m.Key))
	require.Equal(t, "invoice.paid", eventType(m))

	var body map[string]any
	require.NoError(t, json.Unmarshal(m.Value, &body))
	require.Equal(t, "FV/2024/10/0001", body["number"])
	require.Equal(t, "300", body["total"])
	require.Equal(t, "PAID", body["status"])
}

func TestEventType_MissingHeader(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unknown", eventType(kafka.Message{}))
}
