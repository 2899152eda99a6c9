package amqp

import (
	"errors"
	"testing"

	"spendtrack/internal/core"
)

func TestExpenseRecordedRoundTrip(t *testing.T) {
	e, err := core.NewExpense("Groceries", "Food", "68.45", "2024-04-06", "Weekly supermarket run")
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}

	msg := NewExpenseRecordedMessage(e)
	if msg.RecordedAt.IsZero() {
		t.Fatal("RecordedAt not stamped")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	parsed, err := ExpenseRecordedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	got, err := parsed.Expense()
	if err != nil {
		t.Fatalf("Expense: %v", err)
	}
	if got != e {
		t.Fatalf("round trip changed record:\n got %+v\nwant %+v", got, e)
	}
}

func TestExpenseRejectsMalformedMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  ExpenseRecordedMessage
		want error
	}{
		{
			name: "bad date",
			msg:  ExpenseRecordedMessage{ID: "x", Description: "Lunch", Category: "Food", AmountCents: 100, Date: "06/04/2024"},
			want: core.ErrInvalidDate,
		},
		{
			name: "unknown category",
			msg:  ExpenseRecordedMessage{ID: "x", Description: "Lunch", Category: "Snacks", AmountCents: 100, Date: "2024-04-06"},
			want: core.ErrInvalidCategory,
		},
		{
			name: "zero amount",
			msg:  ExpenseRecordedMessage{ID: "x", Description: "Lunch", Category: "Food", AmountCents: 0, Date: "2024-04-06"},
			want: core.ErrInvalidAmount,
		},
		{
			name: "empty description",
			msg:  ExpenseRecordedMessage{ID: "x", Description: "", Category: "Food", AmountCents: 100, Date: "2024-04-06"},
			want: core.ErrEmptyDescription,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.msg.Expense(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExpenseRecordedMessageFromJSONInvalid(t *testing.T) {
	if _, err := ExpenseRecordedMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}
