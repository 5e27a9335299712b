package record

import "strings"

// Canonical correctness outcomes.
const (
	CorrectnessYes = "Yes"
	CorrectnessNo  = "No"
)

// Token tables for free-form upstream input. The form historically accepted
// Polish labels, so those stay recognized.
var (
	positiveTokens = map[string]bool{
		"true": true, "yes": true, "correct": true,
		"poprawnie": true, "dobrze": true, "1": true,
	}
	negativeTokens = map[string]bool{
		"false": true, "no": true, "incorrect": true,
		"błędnie": true, "źle": true, "0": true,
	}
)

// Correctness maps heterogeneous truthy/falsy representations to "Yes"/"No".
// Total over its domain: unrecognized input is "No", never an error. That
// deliberately trades silent misclassification of garbage for resilient
// ingestion; see the token tables above for what is recognized.
func Correctness(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return CorrectnessYes
		}
		return CorrectnessNo
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if positiveTokens[s] {
			return CorrectnessYes
		}
		if negativeTokens[s] {
			return CorrectnessNo
		}
		return CorrectnessNo
	case float64:
		if v > 0 {
			return CorrectnessYes
		}
		return CorrectnessNo
	case int:
		if v > 0 {
			return CorrectnessYes
		}
		return CorrectnessNo
	case int64:
		if v > 0 {
			return CorrectnessYes
		}
		return CorrectnessNo
	default:
		return CorrectnessNo
	}
}

// IsCorrect reports whether an already-normalized value counts as correct.
func IsCorrect(value string) bool {
	return Correctness(value) == CorrectnessYes
}
