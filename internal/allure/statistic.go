package allure

// Statistic counts results by status.
type Statistic struct {
	Failed  int `json:"failed"`
	Broken  int `json:"broken"`
	Skipped int `json:"skipped"`
	Passed  int `json:"passed"`
	Unknown int `json:"unknown"`
	Total   int `json:"total"`
}

// StatisticOf returns a statistic holding a single result with the given status.
// Unrecognized statuses are counted as unknown.
func StatisticOf(status string) Statistic {
	var s Statistic
	switch NormalizeStatus(status) {
	case StatusFail:
		s.Failed = 1
	case StatusBroken:
		s.Broken = 1
	case StatusSkip:
		s.Skipped = 1
	case StatusPass:
		s.Passed = 1
	default:
		s.Unknown = 1
	}
	s.Total = 1

	return s
}

// Add returns the element-wise sum of s and other.
func (s Statistic) Add(other Statistic) Statistic {
	return Statistic{
		Failed:  s.Failed + other.Failed,
		Broken:  s.Broken + other.Broken,
		Skipped: s.Skipped + other.Skipped,
		Passed:  s.Passed + other.Passed,
		Unknown: s.Unknown + other.Unknown,
		Total:   s.Total + other.Total,
	}
}

// Problems is the number of failed and broken results.
func (s Statistic) Problems() int {
	return s.Failed + s.Broken
}

// CompareSeverity orders statistics by severity: it returns a positive number if a is worse than b,
// a negative number if b is worse and zero if both are equally severe.
// Severity is failed+broken, then failed, then total.
func CompareSeverity(a, b Statistic) int {
	if d := a.Problems() - b.Problems(); d != 0 {
		return d
	}

	if d := a.Failed - b.Failed; d != 0 {
		return d
	}

	return a.Total - b.Total
}
