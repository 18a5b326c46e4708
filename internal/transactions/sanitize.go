package transactions

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sanitize coerces a decoded JSON list of arbitrary values into well-formed
// transactions. It is total: malformed elements degrade to defaults instead
// of erroring, so a buggy client can never wedge an upload. Order is
// preserved and duplicates are kept; dedup happens in Merge.
func Sanitize(raw []any) []Transaction {
	out := make([]Transaction, 0, len(raw))
	for _, el := range raw {
		out = append(out, sanitizeOne(el))
	}
	return out
}

func sanitizeOne(el any) Transaction {
	obj, _ := el.(map[string]any)

	t := Transaction{
		ID:          idField(obj),
		Title:       stringField(obj, "title"),
		Description: stringField(obj, "description"),
		Type:        stringField(obj, "type"),
		Amount:      amountField(obj),
		Date:        stringField(obj, "date"),
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if strings.TrimSpace(t.Title) == "" {
		t.Title = DefaultTitle
	}
	if strings.TrimSpace(t.Type) == "" {
		t.Type = TypeExpense
	}
	if strings.TrimSpace(t.Date) == "" {
		t.Date = time.Now().UTC().Format(time.RFC3339)
	}
	return t
}

// idField keeps string ids as-is and stringifies numeric ids so that a
// client sending numbers still gets stable ids across merges. Anything
// else counts as absent and gets a fresh uuid.
func idField(obj map[string]any) string {
	switch v := obj["id"].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func amountField(obj map[string]any) float64 {
	switch v := obj["amount"].(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
