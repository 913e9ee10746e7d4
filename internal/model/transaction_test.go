package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction_DerivesCalendarFields(t *testing.T) {
	tests := []struct {
		date      time.Time
		wantYear  int
		wantMonth int
		wantName  string
	}{
		{Date(2023, time.February, 27), 2023, 2, "February"},
		{Date(2024, time.December, 31), 2024, 12, "December"},
		{Date(2021, time.January, 1), 2021, 1, "January"},
	}
	for _, tt := range tests {
		txn := NewTransaction(tt.date, "desc", "Food", "Sale", decimal.NewFromInt(1))
		assert.Equal(t, tt.wantYear, txn.Year, "year for %s", tt.date)
		assert.Equal(t, tt.wantMonth, txn.Month, "month for %s", tt.date)
		assert.Equal(t, tt.wantName, txn.MonthName, "month name for %s", tt.date)
	}
}

func TestNewTransaction_TruncatesToDate(t *testing.T) {
	ts := time.Date(2023, time.March, 1, 23, 30, 0, 0, time.UTC)
	txn := NewTransaction(ts, "Rent", "Rent", "Sale", decimal.NewFromInt(20))
	assert.True(t, txn.Date.Equal(Date(2023, time.March, 1)))
}

func TestTransactionSet_CloneDoesNotAlias(t *testing.T) {
	set := TransactionSet{
		NewTransaction(Date(2023, time.March, 1), "a", "Food", "Sale", decimal.NewFromInt(1)),
	}
	cp := set.Clone()
	cp[0].Description = "changed"
	assert.Equal(t, "a", set[0].Description)
	assert.Nil(t, TransactionSet(nil).Clone())
}

func TestTransactionSet_Total(t *testing.T) {
	set := TransactionSet{
		NewTransaction(Date(2023, time.March, 1), "a", "Food", "Sale", decimal.RequireFromString("0.1")),
		NewTransaction(Date(2023, time.March, 2), "b", "Food", "Sale", decimal.RequireFromString("0.2")),
	}
	assert.True(t, set.Total().Equal(decimal.RequireFromString("0.3")), "got %s", set.Total())
	assert.True(t, TransactionSet(nil).Total().IsZero())
}

func TestMonthNameOf(t *testing.T) {
	assert.Equal(t, "January", MonthNameOf(1))
	assert.Equal(t, "December", MonthNameOf(12))
	assert.Empty(t, MonthNameOf(0))
	assert.Empty(t, MonthNameOf(13))
}

func TestMonthStart(t *testing.T) {
	assert.True(t, MonthStart(Date(2023, time.March, 20)).Equal(Date(2023, time.March, 1)))
}
