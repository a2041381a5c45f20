package scoring

import "errors"

// Sentinel kinds for point-value lookups. Callers match these with
// errors.Is.
var (
	ErrUnknownCategory  = errors.New("unknown scoring category")
	ErrUnknownStatistic = errors.New("unknown statistic")
)
