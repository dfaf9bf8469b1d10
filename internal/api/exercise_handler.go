package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/service"
)

// ExerciseHandler serves the progression and mobility catalogs.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	mobilityService service.MobilityService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, mobilityService service.MobilityService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, mobilityService: mobilityService}
}

// ListExercises godoc
// @Summary List progression exercises
// @Tags Exercises
// @Produce json
// @Param pillar query string false "Exact pillar name"
// @Param skill_level query string false "Exact skill level"
// @Success 200 {array} domain.Exercise
// @Router /api/exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := domain.ExerciseFilter{
		Pillar:     c.Query("pillar"),
		SkillLevel: c.Query("skill_level"),
	}
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary Get an exercise by ID
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /api/exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// ListPillars godoc
// @Summary List the distinct training pillars
// @Tags Exercises
// @Produce json
// @Success 200 {object} gin.H "pillars, sorted"
// @Router /api/exercises/pillars [get]
func (h *ExerciseHandler) ListPillars(c *gin.Context) {
	pillars, err := h.exerciseService.ListPillars(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pillars": pillars})
}

// ListMobility godoc
// @Summary List mobility exercises
// @Tags Mobility
// @Produce json
// @Success 200 {array} domain.MobilityExercise
// @Router /api/mobility [get]
func (h *ExerciseHandler) ListMobility(c *gin.Context) {
	items, err := h.mobilityService.ListMobilityExercises(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMobility godoc
// @Summary Get a mobility exercise by ID
// @Tags Mobility
// @Produce json
// @Param id path string true "Mobility exercise ID"
// @Success 200 {object} domain.MobilityExercise
// @Failure 404 {object} gin.H "Mobility exercise not found"
// @Router /api/mobility/{id} [get]
func (h *ExerciseHandler) GetMobility(c *gin.Context) {
	item, err := h.mobilityService.GetMobilityExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
