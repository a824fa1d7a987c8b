package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mmw1984/timetable/internal/service"
	appErrors "github.com/mmw1984/timetable/pkg/errors"
	"github.com/mmw1984/timetable/pkg/response"
)

// QueryHandler implements the single-query string convention: one
// endpoint selecting any schedule operation by name, with an optional
// date parameter and a raw-output mode that renders the envelope
// verbatim (indented) for embedding.
type QueryHandler struct {
	service *service.ScheduleService
}

// NewQueryHandler constructs the handler.
func NewQueryHandler(svc *service.ScheduleService) *QueryHandler {
	return &QueryHandler{service: svc}
}

// Query godoc
// @Summary Dispatch a named schedule query
// @Tags Schedule
// @Produce json
// @Param name query string true "Operation: today, byDate, current, week, subjects, timetables"
// @Param date query string false "Date for byDate, YYYY-MM-DD"
// @Param raw query bool false "Render the envelope indented"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /query [get]
func (h *QueryHandler) Query(c *gin.Context) {
	raw, _ := strconv.ParseBool(c.Query("raw"))

	var (
		data interface{}
		err  error
	)
	switch name := c.Query("name"); name {
	case "today":
		data = h.service.Today()
	case "byDate":
		data, err = h.service.ByDate(c.Query("date"))
	case "current":
		data = h.service.Current()
	case "week":
		data = h.service.Week()
	case "subjects":
		data = h.service.Subjects()
	case "timetables":
		data = h.service.Timetables()
	default:
		err = appErrors.Clone(appErrors.ErrUnknownOp, "unknown query operation "+strconv.Quote(name))
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	if raw {
		response.IndentedOK(c, data)
		return
	}
	response.OK(c, data)
}
