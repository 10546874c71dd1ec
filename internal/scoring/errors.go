package scoring

import "fmt"

// ParseError reports a syntax error in source handed to the complexity
// analyzer. Row and Column are 1-based and point at the first malformed
// construct the parser saw.
type ParseError struct {
	Language Language
	Row      int
	Column   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scoring: syntax error in %s source at line %d, column %d", e.Language, e.Row, e.Column)
}

// InvalidInputError reports an out-of-domain numeric input, such as a
// zero-month timeline that would divide by zero in the pressure term.
type InvalidInputError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("scoring: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}
