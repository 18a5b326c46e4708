package transactions

// Summary totals a ledger. Positive amounts count toward income, negative
// toward expense; Expense is reported as a positive magnitude.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

func Summarize(list []Transaction) Summary {
	var s Summary
	for _, t := range list {
		if t.Amount >= 0 {
			s.Income += t.Amount
		} else {
			s.Expense += -t.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}
