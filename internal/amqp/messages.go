package amqp

import (
	"encoding/json"
	"time"

	"fincopilot/internal/core"
)

// TransactionSyncMessage carries a full transaction snapshot to the sync
// worker. The worker appends it to the spreadsheet without reading the
// store, so the message must be self-contained.
type TransactionSyncMessage struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	AmountCents int64     `json:"amountCents"`
	Vendor      string    `json:"vendor"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes"`
	Type        string    `json:"type"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewTransactionSyncMessage(t core.Transaction) *TransactionSyncMessage {
	return &TransactionSyncMessage{
		ID:          t.ID,
		Date:        t.Date,
		AmountCents: t.Amount.Cents,
		Vendor:      t.Vendor,
		Category:    string(t.Category),
		Notes:       t.Notes,
		Type:        string(t.Type),
		Source:      string(t.Source),
		CreatedAt:   t.CreatedAt,
		Timestamp:   time.Now(),
	}
}

// Transaction rebuilds the domain object carried by the message.
func (m *TransactionSyncMessage) Transaction() (core.Transaction, error) {
	t := core.Transaction{
		ID:        m.ID,
		Date:      m.Date,
		Amount:    core.Money{Cents: m.AmountCents},
		Vendor:    m.Vendor,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
	var err error
	if t.Category, err = core.ParseCategory(m.Category); err != nil {
		return core.Transaction{}, err
	}
	if t.Type, err = core.ParseTransactionType(m.Type); err != nil {
		return core.Transaction{}, err
	}
	if t.Source, err = core.ParseSource(m.Source); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (m *TransactionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionSyncMessageFromJSON(data []byte) (*TransactionSyncMessage, error) {
	var msg TransactionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
