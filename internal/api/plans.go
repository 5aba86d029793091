package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// UserTreatmentPlans fetches the signed-in patient's plans with their
// nested exercises via GET /api/user/treatment-plans
func (c *Client) UserTreatmentPlans(ctx context.Context) ([]types.TreatmentPlan, error) {
	var out []types.TreatmentPlan
	if err := c.do(ctx, "user_treatment_plans", http.MethodGet, "api/user/treatment-plans", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserExercisesProgress fetches the dashboard aggregate via
// GET /api/user/exercises/progress
func (c *Client) UserExercisesProgress(ctx context.Context) (*types.UserProgress, error) {
	var out types.UserProgress
	if err := c.do(ctx, "user_exercises_progress", http.MethodGet, "api/user/exercises/progress", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExerciseDetails fetches GET /api/exercises/{id}, including the plan
// instances whose completed flags reflect the last server-confirmed state
func (c *Client) ExerciseDetails(ctx context.Context, exerciseID int) (*types.ExerciseDetails, error) {
	var out types.ExerciseDetails
	path := fmt.Sprintf("api/exercises/%d", exerciseID)
	if err := c.do(ctx, "exercise_details", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddExerciseProgress appends one logged session to a plan-exercise pairing
// via POST /api/exercises/{planExerciseId}/progress. Pain and difficulty
// are validated to the inclusive 0-10 scale before the wire call.
func (c *Client) AddExerciseProgress(ctx context.Context, planExerciseID int, req *types.AddProgressRequest) (*types.AddProgressResponse, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out types.AddProgressResponse
	path := fmt.Sprintf("api/exercises/%d/progress", planExerciseID)
	if err := c.do(ctx, "add_exercise_progress", http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExerciseStatus toggles a plan-exercise instance complete/pending
// via POST /api/exercises/{planExerciseId}/update-status?completed={bool}
func (c *Client) UpdateExerciseStatus(ctx context.Context, planExerciseID int, completed bool) (*types.Status, error) {
	var out types.Status
	path := fmt.Sprintf("api/exercises/%d/update-status", planExerciseID)
	query := url.Values{"completed": []string{strconv.FormatBool(completed)}}
	if err := c.do(ctx, "update_exercise_status", http.MethodPost, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExerciseHistory fetches the cross-plan history of one exercise via
// GET /api/exercises/{id}/history
func (c *Client) ExerciseHistory(ctx context.Context, exerciseID int) (*types.ExerciseHistory, error) {
	var out types.ExerciseHistory
	path := fmt.Sprintf("api/exercises/%d/history", exerciseID)
	if err := c.do(ctx, "exercise_history", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TreatmentPlanProgress fetches GET /api/treatment-plans/{id}/progress
func (c *Client) TreatmentPlanProgress(ctx context.Context, planID int) (*types.PlanProgressSummary, error) {
	var out types.PlanProgressSummary
	path := fmt.Sprintf("api/treatment-plans/%d/progress", planID)
	if err := c.do(ctx, "treatment_plan_progress", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserExerciseAnalytics fetches GET /api/user/exercise-analytics
func (c *Client) UserExerciseAnalytics(ctx context.Context) (*types.ExerciseAnalytics, error) {
	var out types.ExerciseAnalytics
	if err := c.do(ctx, "user_exercise_analytics", http.MethodGet, "api/user/exercise-analytics", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
