package amqp

import (
	"encoding/json"
	"time"

	"spendtrack/internal/core"
)

// ExpenseRecordedMessage carries a fully validated expense record from the
// serving process to the archive worker. The record travels whole because
// the in-memory store is process-local; the consumer cannot fetch it back
// by ID.
type ExpenseRecordedMessage struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Note        string    `json:"note"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// NewExpenseRecordedMessage builds a message from a validated expense.
func NewExpenseRecordedMessage(e core.Expense) *ExpenseRecordedMessage {
	return &ExpenseRecordedMessage{
		ID:          e.ID,
		Description: e.Description,
		Category:    string(e.Category),
		AmountCents: e.Amount.Cents,
		Date:        e.Date.String(),
		Note:        e.Note,
		RecordedAt:  time.Now().UTC(),
	}
}

// Expense reconstructs the expense record carried by the message.
// Reconstruction re-runs validation so a malformed message is rejected
// before it reaches the archive.
func (m *ExpenseRecordedMessage) Expense() (core.Expense, error) {
	date, err := core.ParseDate(m.Date)
	if err != nil {
		return core.Expense{}, err
	}
	e := core.Expense{
		ID:          m.ID,
		Description: m.Description,
		Category:    core.Category(m.Category),
		Amount:      core.Money{Cents: m.AmountCents},
		Date:        date,
		Note:        m.Note,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}

// ToJSON converts the message to JSON bytes.
func (m *ExpenseRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseRecordedMessageFromJSON parses a message from JSON bytes.
func ExpenseRecordedMessageFromJSON(data []byte) (*ExpenseRecordedMessage, error) {
	var m ExpenseRecordedMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
