package analytics

// Period is a fixed time-of-day bucket keyed by the local hour of a task's
// start time.
type Period string

const (
	PeriodMorning   Period = "MORNING"   // [6,12)
	PeriodAfternoon Period = "AFTERNOON" // [12,18)
	PeriodEvening   Period = "EVENING"   // [18,24)
	PeriodNight     Period = "NIGHT"     // [0,6)
)

// PeriodOrder is the canonical bucket order, used for tie-breaking and for
// the first/last fallback when no bucket is reliable.
var PeriodOrder = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

// ReliabilityThreshold is the minimum sample count before a period statistic
// is treated as meaningful for best/worst selection.
const ReliabilityThreshold = 3

// Timeframe restricts aggregation to a trailing calendar-day window.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "WEEK"
	TimeframeMonth   Timeframe = "MONTH"
	TimeframeQuarter Timeframe = "QUARTER"
	TimeframeAll     Timeframe = "ALL"
)

// Days returns the window length in calendar days, 0 meaning unbounded.
func (tf Timeframe) Days() int {
	switch tf {
	case TimeframeWeek:
		return 7
	case TimeframeMonth:
		return 30
	case TimeframeQuarter:
		return 90
	default:
		return 0
	}
}

// Totals are whole-batch counters.
type Totals struct {
	TotalTasks      int `json:"totalTasks"`
	CorrectTasks    int `json:"correctTasks"`
	AccuracyPercent int `json:"accuracyPercent"`
}

// PeriodStats accumulates one time-of-day bucket.
type PeriodStats struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	TotalTime   float64 `json:"totalTime"` // minutes, only tasks with usable start/end
	Accuracy    int     `json:"accuracy"`
	AverageTime float64 `json:"averageTime"`
}

// PeriodSelection is one side of a best/worst pick. Reliable=false marks the
// low-confidence first/last fallback and must be surfaced as such downstream.
type PeriodSelection struct {
	Period   Period      `json:"period"`
	Stats    PeriodStats `json:"stats"`
	Reliable bool        `json:"reliable"`
}

// BestWorst pairs the best and worst performing periods. Either side is nil
// when no bucket has data at all.
type BestWorst struct {
	Best  *PeriodSelection `json:"best,omitempty"`
	Worst *PeriodSelection `json:"worst,omitempty"`
}

// CategoryTimeEntry is per-category elapsed time, ranked descending.
type CategoryTimeEntry struct {
	Category  string  `json:"category"`
	TotalTime float64 `json:"totalTime"` // minutes
	TaskCount int     `json:"taskCount"`
}

// Streak is the consecutive-day study streak derived from task dates.
type Streak struct {
	CurrentDays int `json:"currentDays"`
	LongestDays int `json:"longestDays"`
}

// Snapshot is the full derived analytics payload. It is recomputed on demand
// and never persisted; everything here is reproducible from source records.
type Snapshot struct {
	Timeframe         Timeframe              `json:"timeframe"`
	Totals            Totals                 `json:"totals"`
	BySubject         map[string]int         `json:"bySubject"`
	ByCategory        map[string]int         `json:"byCategory"`
	ByTimePeriod      map[Period]PeriodStats `json:"byTimePeriod"`
	BestWorst         BestWorst              `json:"bestWorst"`
	CategoryTime      []CategoryTimeEntry    `json:"categoryTime"`
	Streak            Streak                 `json:"streak"`
	Recommendations   []string               `json:"recommendations"`
	ExamCountdownDays *int                   `json:"examCountdownDays,omitempty"`
}
