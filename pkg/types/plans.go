package types

// TreatmentPlan is a therapist-authored bundle of prescribed exercises.
// Read-only from the client apart from the nested exercise completion flags.
type TreatmentPlan struct {
	PlanID        int        `json:"planId"`
	PatientID     int        `json:"patientId"`
	TherapistID   int        `json:"therapistId"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	StartDate     *string    `json:"startDate"`
	EndDate       *string    `json:"endDate"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
	TherapistName string     `json:"therapistName"`
	Progress      float64    `json:"progress"`
	Exercises     []Exercise `json:"exercises"`
}

// Exercise is the occurrence of an exercise within a treatment plan,
// distinct from the exercise's global identity (ExerciseID).
type Exercise struct {
	ExerciseID     int     `json:"exerciseId"`
	PlanExerciseID int     `json:"planExerciseId"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	VideoURL       *string `json:"videoUrl"`
	ImageURL       *string `json:"imageUrl"`
	VideoType      string  `json:"videoType"`
	Sets           int     `json:"sets"`
	Repetitions    int     `json:"repetitions"`
	Frequency      string  `json:"frequency"`
	Duration       *int    `json:"duration"`
	Completed      bool    `json:"completed"`
	ThumbnailURL   *string `json:"thumbnailUrl"`
}

// ExerciseDetails is the response of GET /api/exercises/{id}
type ExerciseDetails struct {
	ExerciseID    int                    `json:"exerciseId"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	VideoURL      *string                `json:"videoUrl"`
	VideoType     string                 `json:"videoType"`
	ThumbnailURL  *string                `json:"thumbnailUrl"`
	Difficulty    string                 `json:"difficulty"`
	CategoryID    *int                   `json:"categoryId"`
	CategoryName  *string                `json:"categoryName"`
	Duration      *int                   `json:"duration"`
	Instructions  string                 `json:"instructions"`
	PlanInstances []PlanExerciseInstance `json:"planInstances"`
}

// PlanExerciseInstance ties an exercise to one plan with its prescription
// and the logged history for that pairing
type PlanExerciseInstance struct {
	PlanExerciseID  int                     `json:"planExerciseId"`
	PlanID          int                     `json:"planId"`
	PlanName        string                  `json:"planName"`
	PlanStatus      string                  `json:"planStatus"`
	Sets            int                     `json:"sets"`
	Repetitions     int                     `json:"repetitions"`
	Frequency       string                  `json:"frequency"`
	Duration        *int                    `json:"duration"`
	Notes           *string                 `json:"notes"`
	Completed       bool                    `json:"completed"`
	ProgressHistory []ExerciseProgressEntry `json:"progressHistory"`
}

// ExerciseProgressEntry is one logged session within a plan instance
type ExerciseProgressEntry struct {
	CompletionDate       string  `json:"completionDate"`
	SetsCompleted        *int    `json:"setsCompleted"`
	RepetitionsCompleted *int    `json:"repetitionsCompleted"`
	DurationSeconds      *int    `json:"durationSeconds"`
	PainLevel            *int    `json:"painLevel"`
	DifficultyLevel      *int    `json:"difficultyLevel"`
	Notes                *string `json:"notes"`
}

// AddProgressRequest is the body of POST /api/exercises/{planExerciseId}/progress.
// Pain and difficulty use inclusive 0-10 scales; out-of-range values are a
// client-side validation failure, the server is not relied on to enforce them.
type AddProgressRequest struct {
	SetsCompleted        int     `json:"sets_completed" validate:"required,min=1"`
	RepetitionsCompleted *int    `json:"repetitions_completed,omitempty" validate:"omitempty,min=0"`
	DurationSeconds      *int    `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	PainLevel            *int    `json:"pain_level,omitempty" validate:"omitempty,min=0,max=10"`
	DifficultyLevel      *int    `json:"difficulty_level,omitempty" validate:"omitempty,min=0,max=10"`
	Notes                *string `json:"notes,omitempty"`
}

// AddProgressResponse is the response of the progress-logging endpoint
type AddProgressResponse struct {
	Detail     string `json:"detail"`
	ProgressID int    `json:"progressId"`
}

// ExerciseHistory is the response of GET /api/exercises/{id}/history
type ExerciseHistory struct {
	ExerciseID      int             `json:"exerciseId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	VideoURL        *string         `json:"videoUrl"`
	VideoType       string          `json:"videoType"`
	Difficulty      string          `json:"difficulty"`
	Stats           ExerciseStats   `json:"stats"`
	PlanInstances   []PlanInstance  `json:"planInstances"`
	ProgressHistory []ProgressEntry `json:"progressHistory"`
}

// ExerciseStats aggregates the logged history of one exercise
type ExerciseStats struct {
	TotalCompletions  int      `json:"totalCompletions"`
	AveragePain       *float64 `json:"averagePain"`
	AverageDifficulty *float64 `json:"averageDifficulty"`
	FirstCompleted    *string  `json:"firstCompleted"`
	LastCompleted     *string  `json:"lastCompleted"`
}

// PlanInstance is the compact plan-linkage record used by history views
type PlanInstance struct {
	PlanExerciseID int    `json:"planExerciseId"`
	PlanID         int    `json:"planId"`
	PlanName       string `json:"planName"`
	Sets           int    `json:"sets"`
	Repetitions    int    `json:"repetitions"`
	Frequency      string `json:"frequency"`
}

// ProgressEntry is one append-only history record across plans
type ProgressEntry struct {
	ProgressID           int     `json:"progressId"`
	PlanExerciseID       int     `json:"planExerciseId"`
	PlanID               int     `json:"planId"`
	PlanName             string  `json:"planName"`
	CompletionDate       *string `json:"completionDate"`
	SetsCompleted        *int    `json:"setsCompleted"`
	RepetitionsCompleted *int    `json:"repetitionsCompleted"`
	DurationSeconds      *int    `json:"durationSeconds"`
	PainLevel            *int    `json:"painLevel"`
	DifficultyLevel      *int    `json:"difficultyLevel"`
	Notes                *string `json:"notes"`
	CreatedAt            *string `json:"createdAt"`
}

// UserProgress is the dashboard aggregate of GET /api/user/exercises/progress
type UserProgress struct {
	CompletionRate float64        `json:"completionRate"`
	WeeklyStats    map[string]int `json:"weeklyStats"`
	DonutData      map[string]int `json:"donutData"`
}

// PlanProgressSummary is the response of GET /api/treatment-plans/{id}/progress
type PlanProgressSummary struct {
	PlanID             int                       `json:"planId"`
	PlanName           string                    `json:"planName"`
	StartDate          *string                   `json:"startDate"`
	EndDate            *string                   `json:"endDate"`
	Status             string                    `json:"status"`
	DaysActive         int                       `json:"daysActive"`
	TotalExercises     int                       `json:"totalExercises"`
	CompletedExercises int                       `json:"completedExercises"`
	CompletionRate     float64                   `json:"completionRate"`
	DailyActivity      []DailyActivity           `json:"dailyActivity"`
	ExerciseProgress   []ExerciseProgressSummary `json:"exerciseProgress"`
}

// DailyActivity is one day's completion count
type DailyActivity struct {
	Date               string `json:"date"`
	ExercisesCompleted int    `json:"exercisesCompleted"`
}

// ExerciseProgressSummary is the per-exercise rollup inside a plan summary
type ExerciseProgressSummary struct {
	ExerciseID        int      `json:"exerciseId"`
	PlanExerciseID    int      `json:"planExerciseId"`
	Name              string   `json:"name"`
	TargetSets        int      `json:"targetSets"`
	TargetRepetitions int      `json:"targetRepetitions"`
	LastCompleted     *string  `json:"lastCompleted"`
	CompletionCount   int      `json:"completionCount"`
	AveragePain       *float64 `json:"averagePain"`
	AverageDifficulty *float64 `json:"averageDifficulty"`
	IsCompleted       bool     `json:"isCompleted"`
}

// ExerciseAnalytics is the response of GET /api/user/exercise-analytics
type ExerciseAnalytics struct {
	MostFrequentExercises  []ExerciseSummary      `json:"mostFrequentExercises"`
	LeastFrequentExercises []ExerciseSummary      `json:"leastFrequentExercises"`
	DifficultyTrend        []DifficultyTrendPoint `json:"difficultyTrend"`
	PainTrend              []PainTrendPoint       `json:"painTrend"`
	CategoryDistribution   []CategoryCount        `json:"categoryDistribution"`
	TimeOfDayPreference    []TimePreference       `json:"timeOfDayPreference"`
}

// ExerciseSummary is the analytics rollup for a single exercise
type ExerciseSummary struct {
	ExerciseID      int     `json:"exerciseId"`
	Name            string  `json:"name"`
	Difficulty      *string `json:"difficulty"`
	CategoryID      *int    `json:"categoryId"`
	CompletionCount int     `json:"completionCount"`
	LastCompleted   *string `json:"lastCompleted"`
}

// DifficultyTrendPoint is one point of the difficulty trend line
type DifficultyTrendPoint struct {
	Date              string  `json:"date"`
	AverageDifficulty float64 `json:"averageDifficulty"`
}

// PainTrendPoint is one point of the pain trend line
type PainTrendPoint struct {
	Date        string  `json:"date"`
	AveragePain float64 `json:"averagePain"`
}

// CategoryCount is one slice of the category distribution
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TimePreference is one bucket of the time-of-day histogram
type TimePreference struct {
	TimeOfDay string `json:"timeOfDay"`
	Count     int    `json:"count"`
}
