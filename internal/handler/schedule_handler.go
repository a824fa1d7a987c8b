package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mmw1984/timetable/internal/dto"
	"github.com/mmw1984/timetable/internal/service"
	"github.com/mmw1984/timetable/pkg/response"
)

// ScheduleHandler serves the read-only schedule queries.
type ScheduleHandler struct {
	service *service.ScheduleService
	cache   *service.CacheService
}

// NewScheduleHandler constructs the handler. The cache may be nil.
func NewScheduleHandler(svc *service.ScheduleService, cache *service.CacheService) *ScheduleHandler {
	return &ScheduleHandler{service: svc, cache: cache}
}

// Today godoc
// @Summary Today's full day record
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/today [get]
func (h *ScheduleHandler) Today(c *gin.Context) {
	response.OK(c, h.service.Today())
}

// ByDate godoc
// @Summary Day record for a specific date
// @Tags Schedule
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule/date/{date} [get]
func (h *ScheduleHandler) ByDate(c *gin.Context) {
	record, err := h.service.ByDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// Current godoc
// @Summary Current period, next period and remaining time
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/current [get]
func (h *ScheduleHandler) Current(c *gin.Context) {
	response.OK(c, h.service.Current())
}

// Week godoc
// @Summary Monday-start week of day records
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	response.OK(c, h.service.Week())
}

// Subjects godoc
// @Summary Full subject table keyed by day cycle
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *ScheduleHandler) Subjects(c *gin.Context) {
	// Subject and timetable payloads derive from immutable
	// configuration, so they are the only cacheable queries.
	if h.cache.Enabled() {
		var cached map[int]map[int]string
		if h.cache.Get(c.Request.Context(), "catalog:subjects", &cached) {
			response.OK(c, cached)
			return
		}
	}
	subjects := h.service.Subjects()
	if h.cache.Enabled() {
		h.cache.Set(c.Request.Context(), "catalog:subjects", subjects)
	}
	response.OK(c, subjects)
}

// Timetables godoc
// @Summary All configured timetable variants
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetables [get]
func (h *ScheduleHandler) Timetables(c *gin.Context) {
	if h.cache.Enabled() {
		var cached []dto.TimetableSummary
		if h.cache.Get(c.Request.Context(), "catalog:timetables", &cached) {
			response.OK(c, cached)
			return
		}
	}
	summaries := h.service.Timetables()
	if h.cache.Enabled() {
		h.cache.Set(c.Request.Context(), "catalog:timetables", summaries)
	}
	response.OK(c, summaries)
}
