package stubserver

import (
	"time"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// seed populates the in-memory fixtures: one account, one plan with two
// exercises, two therapists, one appointment, a short chat thread and one
// reviewed submission.
func (s *Server) seed() {
	s.accounts = map[string]account{
		"patient1": {Password: "secret123", Email: "patient1@example.com", Joined: "2025-02-14"},
	}
	s.sessions = map[string]string{}

	s.plans = []types.TreatmentPlan{
		{
			PlanID:        11,
			PatientID:     1,
			TherapistID:   7,
			Name:          "Knee Rehabilitation",
			Description:   strPtr("Post-surgery strengthening program"),
			StartDate:     strPtr("2025-06-01"),
			Status:        "active",
			CreatedAt:     "2025-06-01T09:00:00",
			UpdatedAt:     "2025-06-01T09:00:00",
			TherapistName: "Maria Santos",
			Progress:      50,
			Exercises: []types.Exercise{
				{
					ExerciseID:     101,
					PlanExerciseID: 201,
					Name:           "Straight Leg Raise",
					Description:    "Lift the extended leg while lying flat",
					VideoURL:       strPtr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
					VideoType:      "youtube",
					Sets:           3,
					Repetitions:    10,
					Frequency:      "daily",
					Completed:      true,
				},
				{
					ExerciseID:     102,
					PlanExerciseID: 202,
					Name:           "Heel Slide",
					Description:    "Slide the heel toward the hip and back",
					VideoURL:       strPtr("/media/exercises/heel-slide.mp4"),
					VideoType:      "upload",
					Sets:           2,
					Repetitions:    15,
					Frequency:      "twice daily",
					Duration:       intPtr(120),
					Completed:      false,
				},
			},
		},
	}

	s.therapists = []types.Therapist{
		{
			ID:                     7,
			FirstName:              "Maria",
			LastName:               "Santos",
			CompanyEmail:           "maria.santos@aprcv.example",
			Bio:                    "Specialises in post-operative knee and hip rehabilitation.",
			ExperienceYears:        12,
			Specialties:            []string{"Orthopedic", "Post-surgical"},
			Education:              []string{"DPT, University of Santo Tomas"},
			Languages:              []string{"English", "Filipino"},
			Address:                "Quezon City",
			Rating:                 4.8,
			ReviewCount:            57,
			IsAcceptingNewPatients: true,
			AverageSessionLength:   45,
			Name:                   "Maria Santos",
		},
		{
			ID:                     8,
			FirstName:              "Jose",
			LastName:               "Ramirez",
			CompanyEmail:           "jose.ramirez@aprcv.example",
			Bio:                    "Sports injury and mobility specialist.",
			ExperienceYears:        8,
			Specialties:            []string{"Sports", "Mobility"},
			Languages:              []string{"English"},
			Address:                "Makati",
			Rating:                 4.5,
			ReviewCount:            31,
			IsAcceptingNewPatients: false,
			AverageSessionLength:   60,
			Name:                   "Jose Ramirez",
		},
	}

	s.appointments = []types.Appointment{
		{
			AppointmentID:   501,
			PatientID:       1,
			TherapistID:     7,
			AppointmentDate: time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
			AppointmentTime: "10:00",
			Duration:        45,
			Status:          "scheduled",
			AppointmentType: types.AppointmentTypeVideo,
			CreatedAt:       "2025-06-10T08:30:00",
		},
	}

	s.messages = []types.ChatMessage{
		{
			ID:         601,
			SenderID:   7,
			ReceiverID: 1,
			SenderType: types.SenderTypeTherapist,
			Content:    "How is the knee feeling after yesterday's session?",
			Timestamp:  "2025-06-12T09:15:00",
			IsRead:     true,
		},
		{
			ID:         602,
			SenderID:   1,
			ReceiverID: 7,
			SenderType: types.SenderTypeUser,
			Content:    "A bit sore but much better than last week.",
			Timestamp:  "2025-06-12T09:20:00",
			IsRead:     true,
		},
	}

	s.submissions = []types.VideoSubmissionDetails{
		{
			SubmissionID:      701,
			PatientID:         1,
			ExerciseID:        101,
			ExerciseName:      "Straight Leg Raise",
			TreatmentPlanID:   11,
			TreatmentPlanName: "Knee Rehabilitation",
			VideoURL:          "/media/submissions/701.mp4",
			SubmissionDate:    "2025-06-11T16:40:00",
			Notes:             strPtr("Felt stable through all sets"),
			Status:            types.SubmissionStatusReviewed,
			TherapistFeedback: strPtr("Good form, keep the toes pointed up."),
			FeedbackRating:    strPtr("good"),
			FeedbackDate:      strPtr("2025-06-12T10:00:00"),
		},
	}
}

// exerciseNameLocked resolves an exercise name from the seeded plans.
// Callers hold s.mu.
func (s *Server) exerciseNameLocked(exerciseID int) string {
	for _, plan := range s.plans {
		for _, ex := range plan.Exercises {
			if ex.ExerciseID == exerciseID {
				return ex.Name
			}
		}
	}
	return "Unknown exercise"
}

func (s *Server) exerciseDetailsLocked(exerciseID int) (*types.ExerciseDetails, bool) {
	for _, plan := range s.plans {
		for _, ex := range plan.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			return &types.ExerciseDetails{
				ExerciseID:   ex.ExerciseID,
				Name:         ex.Name,
				Description:  ex.Description,
				VideoURL:     ex.VideoURL,
				VideoType:    ex.VideoType,
				Difficulty:   "moderate",
				Duration:     ex.Duration,
				Instructions: ex.Description,
				PlanInstances: []types.PlanExerciseInstance{
					{
						PlanExerciseID: ex.PlanExerciseID,
						PlanID:         plan.PlanID,
						PlanName:       plan.Name,
						PlanStatus:     plan.Status,
						Sets:           ex.Sets,
						Repetitions:    ex.Repetitions,
						Frequency:      ex.Frequency,
						Duration:       ex.Duration,
						Completed:      ex.Completed,
						ProgressHistory: []types.ExerciseProgressEntry{
							{
								CompletionDate: "2025-06-10T08:00:00",
								SetsCompleted:  intPtr(ex.Sets),
								PainLevel:      intPtr(3),
							},
						},
					},
				},
			}, true
		}
	}
	return nil, false
}

func (s *Server) exerciseHistoryLocked(exerciseID int) (*types.ExerciseHistory, bool) {
	for _, plan := range s.plans {
		for _, ex := range plan.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			avgPain := 3.0
			return &types.ExerciseHistory{
				ExerciseID:  ex.ExerciseID,
				Name:        ex.Name,
				Description: ex.Description,
				VideoURL:    ex.VideoURL,
				VideoType:   ex.VideoType,
				Difficulty:  "moderate",
				Stats: types.ExerciseStats{
					TotalCompletions: 4,
					AveragePain:      &avgPain,
					FirstCompleted:   strPtr("2025-06-02"),
					LastCompleted:    strPtr("2025-06-10"),
				},
				PlanInstances: []types.PlanInstance{
					{
						PlanExerciseID: ex.PlanExerciseID,
						PlanID:         plan.PlanID,
						PlanName:       plan.Name,
						Sets:           ex.Sets,
						Repetitions:    ex.Repetitions,
						Frequency:      ex.Frequency,
					},
				},
				ProgressHistory: []types.ProgressEntry{
					{
						ProgressID:     901,
						PlanExerciseID: ex.PlanExerciseID,
						PlanID:         plan.PlanID,
						PlanName:       plan.Name,
						CompletionDate: strPtr("2025-06-10T08:00:00"),
						SetsCompleted:  intPtr(ex.Sets),
						PainLevel:      intPtr(3),
					},
				},
			}, true
		}
	}
	return nil, false
}

func (s *Server) planProgressLocked(planID int) (*types.PlanProgressSummary, bool) {
	for _, plan := range s.plans {
		if plan.PlanID != planID {
			continue
		}
		var completed int
		perExercise := make([]types.ExerciseProgressSummary, 0, len(plan.Exercises))
		for _, ex := range plan.Exercises {
			if ex.Completed {
				completed++
			}
			perExercise = append(perExercise, types.ExerciseProgressSummary{
				ExerciseID:        ex.ExerciseID,
				PlanExerciseID:    ex.PlanExerciseID,
				Name:              ex.Name,
				TargetSets:        ex.Sets,
				TargetRepetitions: ex.Repetitions,
				CompletionCount:   2,
				IsCompleted:       ex.Completed,
			})
		}
		rate := 0.0
		if len(plan.Exercises) > 0 {
			rate = float64(completed) / float64(len(plan.Exercises)) * 100
		}
		return &types.PlanProgressSummary{
			PlanID:             plan.PlanID,
			PlanName:           plan.Name,
			StartDate:          plan.StartDate,
			EndDate:            plan.EndDate,
			Status:             plan.Status,
			DaysActive:         14,
			TotalExercises:     len(plan.Exercises),
			CompletedExercises: completed,
			CompletionRate:     rate,
			DailyActivity: []types.DailyActivity{
				{Date: "2025-06-09", ExercisesCompleted: 1},
				{Date: "2025-06-10", ExercisesCompleted: 2},
			},
			ExerciseProgress: perExercise,
		}, true
	}
	return nil, false
}

func fixturePatientProfile(username string) types.PatientProfile {
	return types.PatientProfile{
		PatientID:   1,
		TherapistID: 7,
		FirstName:   "Ana",
		LastName:    "Reyes",
		Email:       username + "@example.com",
		Phone:       "+63 912 555 0101",
		DateOfBirth: "1994-03-22",
		Address:     "Quezon City",
		Diagnosis:   "ACL reconstruction recovery",
		Status:      "active",
		CreatedAt:   "2025-05-28T10:00:00",
		UpdatedAt:   "2025-06-10T10:00:00",
		UserID:      "1",
	}
}

func fixtureAnalytics() types.ExerciseAnalytics {
	return types.ExerciseAnalytics{
		MostFrequentExercises: []types.ExerciseSummary{
			{ExerciseID: 101, Name: "Straight Leg Raise", CompletionCount: 12, LastCompleted: strPtr("2025-06-10")},
		},
		LeastFrequentExercises: []types.ExerciseSummary{
			{ExerciseID: 102, Name: "Heel Slide", CompletionCount: 3, LastCompleted: strPtr("2025-06-08")},
		},
		DifficultyTrend: []types.DifficultyTrendPoint{
			{Date: "2025-06-08", AverageDifficulty: 6.0},
			{Date: "2025-06-10", AverageDifficulty: 5.0},
		},
		PainTrend: []types.PainTrendPoint{
			{Date: "2025-06-08", AveragePain: 4.0},
			{Date: "2025-06-10", AveragePain: 3.0},
		},
		CategoryDistribution: []types.CategoryCount{
			{Category: "Strength", Count: 9},
			{Category: "Mobility", Count: 6},
		},
		TimeOfDayPreference: []types.TimePreference{
			{TimeOfDay: "morning", Count: 10},
			{TimeOfDay: "evening", Count: 5},
		},
	}
}
