package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Day identifies one weekday in the weekly plan
type Day string

// ExerciseType determines which measurement fields an exercise carries
type ExerciseType string

// Category groups exercises by the body area they train
type Category string

// SetStatus represents the progress of a single set during a workout
type SetStatus string

const (
	AppName            = "weeklift"
	DefaultConfigDir   = "~/.config/weeklift"
	ConfigFileName     = "config"
	ConfigFileType     = "yaml"
	EnvPrefix          = "WEEKLIFT"
	LogFileName        = "weeklift.log"
	Version            = "v0.1.0"
	DefaultDay         = DayMon
	DefaultType        = TypeWeights
	DefaultCategory    = CategoryCore
	MaxSetsPerExercise = 50

	// Day constants
	DayMon Day = "Mon"
	DayTue Day = "Tue"
	DayWed Day = "Wed"
	DayThu Day = "Thu"
	DayFri Day = "Fri"
	DaySat Day = "Sat"
	DaySun Day = "Sun"

	// Exercise Type constants
	TypeBodyweight ExerciseType = "bodyweight"
	TypeWeights    ExerciseType = "weights"
	TypeTimeBased  ExerciseType = "time-based"

	// Category constants
	CategoryCore      Category = "core"
	CategoryLegs      Category = "legs"
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryCardio    Category = "cardio"
	CategoryFullBody  Category = "full-body"

	// Set Status constants
	SetPending SetStatus = "pending"
	SetDone    SetStatus = "done"
	SetMissed  SetStatus = "missed"
)

// Session States. The main tabs come first so tab cycling can use modular arithmetic.
const (
	StateExercises SessionState = iota
	StateWorkout
	StateWeek
	StateForm
	StateConfirmDelete
)

// NumMainTabs is the number of top-level views reachable with tab
const NumMainTabs = 3
