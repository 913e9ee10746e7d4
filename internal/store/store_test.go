package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func txn(y int, m time.Month, d int, desc, cat string, amount int64) model.Transaction {
	return model.NewTransaction(model.Date(y, m, d), desc, cat, "Sale", decimal.NewFromInt(amount))
}

func TestNew_ConcatenatesAndSorts(t *testing.T) {
	flex := []model.Transaction{
		txn(2023, time.February, 27, "flex-a", "Food", 10),
		txn(2023, time.March, 1, "flex-b", "Rent", 20),
	}
	unlimited := []model.Transaction{
		txn(2022, time.January, 15, "unl-a", "Gas", 40),
		txn(2023, time.February, 27, "unl-b", "Food", 3),
	}

	s := New(flex, unlimited)
	all := s.All()
	require.Len(t, all, 4)
	assert.Equal(t, 4, s.Len())

	got := make([]string, len(all))
	for i, tx := range all {
		got[i] = tx.Description
	}
	// Same-day entries keep source order: flex before unlimited.
	assert.Equal(t, []string{"unl-a", "flex-a", "unl-b", "flex-b"}, got)
}

func TestNew_Empty(t *testing.T) {
	s := New()
	assert.Empty(t, s.All())
	assert.Empty(t, s.Years())
	assert.Empty(t, s.Categories())
	assert.Equal(t, 0, s.Len())

	s = New(nil, []model.Transaction{})
	assert.Equal(t, 0, s.Len())
}

func TestYears(t *testing.T) {
	s := New([]model.Transaction{
		txn(2023, time.March, 1, "a", "Rent", 1),
		txn(2021, time.June, 1, "b", "Food", 1),
		txn(2023, time.April, 1, "c", "Food", 1),
		txn(2022, time.June, 1, "d", "Gas", 1),
	})
	assert.Equal(t, []int{2021, 2022, 2023}, s.Years())
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	s := New([]model.Transaction{
		txn(2023, time.March, 1, "a", "Rent", 1),
		txn(2023, time.January, 1, "b", "Food", 1),
		txn(2023, time.February, 1, "c", "Gas", 1),
		txn(2023, time.April, 1, "d", "Food", 1),
	})
	// Order follows the date-sorted sequence.
	assert.Equal(t, []string{"Food", "Gas", "Rent"}, s.Categories())
}

func TestAccessorsReturnCopies(t *testing.T) {
	src := []model.Transaction{txn(2023, time.March, 1, "a", "Rent", 1)}
	s := New(src)

	src[0].Description = "mutated source"
	all := s.All()
	all[0].Description = "mutated copy"
	years := s.Years()
	years[0] = 1999
	cats := s.Categories()
	cats[0] = "mutated"

	assert.Equal(t, "a", s.All()[0].Description)
	assert.Equal(t, []int{2023}, s.Years())
	assert.Equal(t, []string{"Rent"}, s.Categories())
}
