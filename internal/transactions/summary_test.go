package transactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]Transaction{
		{ID: "1", Amount: 100},
		{ID: "2", Amount: -30.5},
		{ID: "3", Amount: 50},
		{ID: "4", Amount: -19.5},
	})

	assert.Equal(t, 150.0, s.Income)
	assert.Equal(t, 50.0, s.Expense)
	assert.Equal(t, 100.0, s.Balance)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
