package calorie

import (
	"strings"

	"nutriplan/enums"
	"nutriplan/services"
)

var activityFactors = map[string]float64{
	enums.ActivityLow:    1.20,
	enums.ActivityMedium: 1.45,
	enums.ActivityHigh:   1.70,
}

var goalFactors = map[string]float64{
	enums.GoalBulk:        1.10,
	enums.GoalCut:         0.85,
	enums.GoalBalanced:    1.00,
	enums.GoalMaintenance: 1.00,
}

var activityAliases = map[string]string{
	"low":    enums.ActivityLow,
	"medium": enums.ActivityMedium,
	"high":   enums.ActivityHigh,
}

var goalAliases = map[string]string{
	"maintenance": enums.GoalMaintenance,
}

// NormalizeActivity maps user input onto a known activity level, defaulting to medium.
func NormalizeActivity(activity string) string {
	key := strings.ToLower(strings.TrimSpace(activity))
	if alias, ok := activityAliases[key]; ok {
		key = alias
	}
	if _, ok := activityFactors[key]; ok {
		return key
	}
	return enums.ActivityMedium
}

// NormalizeGoal maps user input onto a known goal, defaulting to balanced.
func NormalizeGoal(goal string) string {
	key := strings.ToLower(strings.TrimSpace(goal))
	if alias, ok := goalAliases[key]; ok {
		key = alias
	}
	if _, ok := goalFactors[key]; ok {
		return key
	}
	return enums.GoalBalanced
}

// Estimate returns the daily calorie target. heightCm may be nil.
// The caller must reject non-positive weights before calling.
func Estimate(weightKg float64, heightCm *float64, activity, goal string) int {
	var base float64
	if heightCm == nil {
		base = weightKg * 24
	} else {
		base = weightKg*22 + *heightCm*6
	}
	a := activityFactors[NormalizeActivity(activity)]
	g := goalFactors[NormalizeGoal(goal)]
	return services.Round(base * a * g)
}
