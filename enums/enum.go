package enums

const DateLayout = "2006-01-02"

// activity levels as stored on the profile
const (
	ActivityLow    = "niedrig"
	ActivityMedium = "mittel"
	ActivityHigh   = "hoch"
)

// goals as stored on the profile
const (
	GoalBulk        = "bulk"
	GoalCut         = "cut"
	GoalBalanced    = "balanced"
	GoalMaintenance = "erhaltung"
)

const (
	MealMorning = "Morgen"
	MealLunch   = "Mittag"
	MealEvening = "Abend"
)

// MealSlots is the fixed order of meals within a day.
var MealSlots = []string{MealMorning, MealLunch, MealEvening}

// Weekdays indexed by ISO weekday - 1 (Monday first).
var Weekdays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

const (
	LogPlanGenerate = "plan.generate"
	LogDeployPull   = "deploy.pull"
)

const (
	EventPlanGenerated = "plan.generated"
	EventDeployPulled  = "deploy.pulled"
)

const MessageGenericError = "Etwas ist schiefgelaufen. Bitte versuche es erneut."
