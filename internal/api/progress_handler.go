package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/service"
)

// ProgressHandler serves the caller's training log: progress entries,
// workouts, mobility assessments and analytics.
type ProgressHandler struct {
	progressService service.ProgressService
	mobilityService service.MobilityService
}

func NewProgressHandler(progressService service.ProgressService, mobilityService service.MobilityService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, mobilityService: mobilityService}
}

// --- Request Structs ---

type ProgressRequest struct {
	ExerciseID string     `json:"exercise_id" binding:"required"`
	Date       *time.Time `json:"date"`
	Reps       *int       `json:"reps" binding:"omitempty,min=0"`
	Sets       *int       `json:"sets" binding:"omitempty,min=0"`
	HoldTime   *float64   `json:"hold_time" binding:"omitempty,min=0"`
	Weight     *float64   `json:"weight" binding:"omitempty,min=0"`
	Notes      string     `json:"notes"`
}

type WorkoutRequest struct {
	Name          string                   `json:"name" binding:"required"`
	Exercises     []domain.WorkoutExercise `json:"exercises"`
	ScheduledDate *time.Time               `json:"scheduled_date"`
	CompletedDate *time.Time               `json:"completed_date"`
	Duration      *int                     `json:"duration" binding:"omitempty,min=0"` // minutes
}

type AssessmentRequest struct {
	AssessmentType  string     `json:"assessment_type" binding:"required"`
	Score           *int       `json:"score" binding:"required,min=0,max=3"`
	Notes           string     `json:"notes"`
	AreasOfConcern  []string   `json:"areas_of_concern"`
	Recommendations []string   `json:"recommendations"`
	DateTaken       *time.Time `json:"date_taken"`
}

// --- Progress ---

// LogProgress godoc
// @Summary Log a progress entry for the caller
// @Description Stores the entry and awards 10 points.
// @Tags Progress
// @Security BearerAuth
// @Router /api/progress [post]
func (h *ProgressHandler) LogProgress(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.progressService.LogProgress(c.Request.Context(), user.ID, service.ProgressInput{
		ExerciseID: req.ExerciseID,
		Date:       req.Date,
		Reps:       req.Reps,
		Sets:       req.Sets,
		HoldTime:   req.HoldTime,
		Weight:     req.Weight,
		Notes:      req.Notes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListProgress godoc
// @Summary List the caller's progress entries, newest first
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.UserProgress
// @Router /api/progress [get]
func (h *ProgressHandler) ListProgress(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	entries, err := h.progressService.ListProgress(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListExerciseProgress godoc
// @Summary List the caller's progress for one exercise, oldest first
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param exercise_id path string true "Exercise ID"
// @Success 200 {array} domain.UserProgress
// @Router /api/progress/{exercise_id} [get]
func (h *ProgressHandler) ListExerciseProgress(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	entries, err := h.progressService.ListExerciseProgress(c.Request.Context(), user.ID, c.Param("exercise_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Analytics godoc
// @Summary Progress analytics for the caller
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ProgressAnalytics
// @Router /api/analytics/progress [get]
func (h *ProgressHandler) Analytics(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	stats, err := h.progressService.Analytics(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// --- Workouts ---

// CreateWorkout godoc
// @Summary Create a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body WorkoutRequest true "Workout"
// @Success 200 {object} domain.Workout
// @Failure 400 {object} gin.H "Validation error"
// @Router /api/workouts [post]
func (h *ProgressHandler) CreateWorkout(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.progressService.CreateWorkout(c.Request.Context(), user.ID, service.WorkoutInput{
		Name:          req.Name,
		Exercises:     req.Exercises,
		ScheduledDate: req.ScheduledDate,
		CompletedDate: req.CompletedDate,
		Duration:      req.Duration,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// ListWorkouts godoc
// @Summary List the caller's workouts, newest first
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Workout
// @Router /api/workouts [get]
func (h *ProgressHandler) ListWorkouts(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	workouts, err := h.progressService.ListWorkouts(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// --- Mobility assessments ---

// CreateAssessment godoc
// @Summary Record a mobility assessment
// @Description Score is 0-3. Awards 50 points.
// @Tags Mobility
// @Security BearerAuth
// @Router /api/mobility/assessments [post]
func (h *ProgressHandler) CreateAssessment(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	assessment, err := h.mobilityService.CreateAssessment(c.Request.Context(), user.ID, service.AssessmentInput{
		AssessmentType:  req.AssessmentType,
		Score:           *req.Score,
		Notes:           req.Notes,
		AreasOfConcern:  req.AreasOfConcern,
		Recommendations: req.Recommendations,
		DateTaken:       req.DateTaken,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// ListAssessments godoc
// @Summary List the caller's mobility assessments, newest first
// @Tags Mobility
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.MobilityAssessment
// @Router /api/mobility/assessments [get]
func (h *ProgressHandler) ListAssessments(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	list, err := h.mobilityService.ListAssessments(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// LatestAssessment godoc
// @Summary Latest mobility assessment of the caller
// @Description Responds with null when the caller has no assessment.
// @Tags Mobility
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.MobilityAssessment
// @Router /api/mobility/assessments/latest [get]
func (h *ProgressHandler) LatestAssessment(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	latest, err := h.mobilityService.LatestAssessment(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, latest)
}

// Recommendations godoc
// @Summary Mobility exercise recommendations
// @Description Based on the latest assessment when there is one, general picks otherwise.
// @Tags Mobility
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Router /api/mobility/recommendations [get]
func (h *ProgressHandler) Recommendations(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	rec, err := h.mobilityService.Recommend(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !rec.AssessmentBased {
		c.JSON(http.StatusOK, gin.H{"message": rec.Message, "general_exercises": rec.Exercises})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment_based": true, "recommended_exercises": rec.Exercises})
}
