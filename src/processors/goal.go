package processors

// GoalResult is the resolved break-even target for the selected window.
type GoalResult struct {
	Goal     float64
	Progress float64
	Manual   bool
}

// ResolveGoal derives the dynamic break-even goal from the month's total
// expenses apportioned evenly over its days (rateio) and scaled to the
// window length, so a 1-day and a 30-day report answer "are we covering our
// costs?" on the same scale. A manually entered goal (> 0) always wins.
//
// Progress is revenue against the goal in percent. With no goal at all, any
// revenue counts as fully met.
func ResolveGoal(monthExpenses float64, daysInMonth, periodDays int, manualGoal, revenue float64) GoalResult {
	var dailyRate float64
	if daysInMonth > 0 {
		dailyRate = monthExpenses / float64(daysInMonth)
	}

	result := GoalResult{Goal: dailyRate * float64(periodDays)}
	if manualGoal > 0 {
		result.Goal = manualGoal
		result.Manual = true
	}

	switch {
	case result.Goal > 0:
		result.Progress = revenue / result.Goal * 100
	case revenue > 0:
		result.Progress = 100
	}
	return result
}
