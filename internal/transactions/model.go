package transactions

// Transaction is one ledger entry. The amount is signed by the client at
// creation time: positive for income, negative for expenses. Date is an
// ISO-8601 string and is only used for ordering.
type Transaction struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// Defaults applied by Sanitize when a field is missing or unusable.
const (
	DefaultTitle = "Untitled"
	TypeExpense  = "expense"
)
