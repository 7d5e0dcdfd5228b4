package http

import (
	"github.com/gin-gonic/gin"

	"task-master/pkg/response"
)

// Day godoc
// @Summary     Day view
// @Description Tasks due on a day, earliest first.
// @Tags        Agenda
// @Produce     json
// @Param       date query string false "YYYY-MM-DD, default today"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/agenda/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDateQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Day(ctx, date)
	if err != nil {
		h.fail(c, "uc.Day", err, nil)
		return
	}

	response.OK(c, h.newDayResp(out))
}

// Progress godoc
// @Summary     Day progress
// @Description Completed and total tasks for a day with the completion percentage.
// @Tags        Agenda
// @Produce     json
// @Param       date query string false "YYYY-MM-DD, default today"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/agenda/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDateQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Progress(ctx, date)
	if err != nil {
		h.fail(c, "uc.Progress", err, nil)
		return
	}

	response.OK(c, h.newProgressResp(out))
}

// Weekly godoc
// @Summary     Weekly completion
// @Description Completed tasks per day, Sunday to Saturday, of the week containing date.
// @Tags        Agenda
// @Produce     json
// @Param       date query string false "YYYY-MM-DD, default today"
// @Success     200 {object} weeklyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/agenda/weekly [GET]
func (h *handler) Weekly(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDateQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Weekly(ctx, date)
	if err != nil {
		h.fail(c, "uc.Weekly", err, nil)
		return
	}

	response.OK(c, h.newWeeklyResp(out))
}

// Calendar godoc
// @Summary     Days with tasks
// @Description Days of a month that have at least one task due.
// @Tags        Agenda
// @Produce     json
// @Param       month query string false "YYYY-MM, default this month"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/agenda/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	month, err := h.processMonthQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CalendarMonth(ctx, month)
	if err != nil {
		h.fail(c, "uc.CalendarMonth", err, nil)
		return
	}

	response.OK(c, h.newCalendarResp(out))
}
