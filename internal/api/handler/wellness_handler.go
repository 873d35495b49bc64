package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/api/metrics"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// WellnessHandler handles HTTP requests for wellness self-reports.
// Entries are strictly owner-scoped: the admin surface is read-only.
type WellnessHandler struct {
	service ports.WellnessService
}

func NewWellnessHandler(service ports.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: service}
}

type createWellnessRequest struct {
	SessionType     string  `json:"session_type"     validate:"required,oneof=practice game"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gte=0"`
	FatiguePre      int     `json:"fatigue_pre"      validate:"gte=1,lte=10"`
	SleepQuality    int     `json:"sleep_quality"    validate:"gte=1,lte=10"`
	SleepHours      float64 `json:"sleep_hours"      validate:"gte=0,lte=24"`
	StressLevel     int     `json:"stress_level"     validate:"gte=1,lte=10"`
	Mood            int     `json:"mood"             validate:"gte=1,lte=10"`
	MuscleSoreness  int     `json:"muscle_soreness"  validate:"gte=1,lte=10"`
	InjuryPain      int     `json:"injury_pain"      validate:"omitempty,gte=0,lte=10"`
	MenstrualPeriod bool    `json:"menstrual_period"`
	NutritionQual   int     `json:"nutrition_quality" validate:"gte=1,lte=10"`
	FatiguePost     int     `json:"fatigue_post"     validate:"omitempty,gte=1,lte=10"`
	RPE             int     `json:"rpe"              validate:"omitempty,gte=1,lte=10"`
	Comments        string  `json:"comments"`
}

type updateWellnessRequest struct {
	SessionType     *string  `json:"session_type"     validate:"omitempty,oneof=practice game"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gte=0"`
	FatiguePre      *int     `json:"fatigue_pre"      validate:"omitempty,gte=1,lte=10"`
	SleepQuality    *int     `json:"sleep_quality"    validate:"omitempty,gte=1,lte=10"`
	SleepHours      *float64 `json:"sleep_hours"      validate:"omitempty,gte=0,lte=24"`
	StressLevel     *int     `json:"stress_level"     validate:"omitempty,gte=1,lte=10"`
	Mood            *int     `json:"mood"             validate:"omitempty,gte=1,lte=10"`
	MuscleSoreness  *int     `json:"muscle_soreness"  validate:"omitempty,gte=1,lte=10"`
	InjuryPain      *int     `json:"injury_pain"      validate:"omitempty,gte=0,lte=10"`
	MenstrualPeriod *bool    `json:"menstrual_period"`
	NutritionQual   *int     `json:"nutrition_quality" validate:"omitempty,gte=1,lte=10"`
	FatiguePost     *int     `json:"fatigue_post"     validate:"omitempty,gte=1,lte=10"`
	RPE             *int     `json:"rpe"              validate:"omitempty,gte=1,lte=10"`
	Comments        *string  `json:"comments"`
}

func (r *updateWellnessRequest) toUpdate() ports.UpdateWellnessEntry {
	upd := ports.UpdateWellnessEntry{
		DurationMinutes: r.DurationMinutes,
		FatiguePre:      r.FatiguePre,
		SleepQuality:    r.SleepQuality,
		SleepHours:      r.SleepHours,
		StressLevel:     r.StressLevel,
		Mood:            r.Mood,
		MuscleSoreness:  r.MuscleSoreness,
		InjuryPain:      r.InjuryPain,
		MenstrualPeriod: r.MenstrualPeriod,
		NutritionQual:   r.NutritionQual,
		FatiguePost:     r.FatiguePost,
		RPE:             r.RPE,
		Comments:        r.Comments,
	}
	if r.SessionType != nil {
		st := domain.SessionType(*r.SessionType)
		upd.SessionType = &st
	}
	return upd
}

// ListOwn handles GET /v1/wellness.
//
// @Summary      List the caller's wellness entries
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WellnessEntry
// @Failure      401  {object}  map[string]string
// @Router       /v1/wellness [get]
func (h *WellnessHandler) ListOwn(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	entries, err := h.service.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /v1/wellness.
//
// @Summary      Submit a wellness self-report
// @Tags         wellness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWellnessRequest  true  "Self-report"
// @Success      201   {object}  domain.WellnessEntry
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/wellness [post]
func (h *WellnessHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createWellnessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), actor, ports.CreateWellnessInput{
		SessionType:     req.SessionType,
		DurationMinutes: req.DurationMinutes,
		FatiguePre:      req.FatiguePre,
		SleepQuality:    req.SleepQuality,
		SleepHours:      req.SleepHours,
		StressLevel:     req.StressLevel,
		Mood:            req.Mood,
		MuscleSoreness:  req.MuscleSoreness,
		InjuryPain:      req.InjuryPain,
		MenstrualPeriod: req.MenstrualPeriod,
		NutritionQual:   req.NutritionQual,
		FatiguePost:     req.FatiguePost,
		RPE:             req.RPE,
		Comments:        req.Comments,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("wellness").Inc()
	return c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /v1/wellness/:id (owner-only).
//
// @Summary      Update an owned wellness entry
// @Tags         wellness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Entry id"
// @Param        body  body      updateWellnessRequest  true  "Fields to update"
// @Success      200   {object}  domain.WellnessEntry
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/wellness/{id} [put]
func (h *WellnessHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateWellnessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /v1/wellness/:id (owner-only).
//
// @Summary      Delete an owned wellness entry
// @Tags         wellness
// @Security     BearerAuth
// @Param        id  path  string  true  "Entry id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/wellness/{id} [delete]
func (h *WellnessHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdminListAll handles GET /v1/admin/wellness. This is the only admin
// operation on wellness data, and it is read-only.
//
// @Summary      List every wellness entry (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.WellnessEntry
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/wellness [get]
func (h *WellnessHandler) AdminListAll(c echo.Context) error {
	entries, err := h.service.AdminListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
