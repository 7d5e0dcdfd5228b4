package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"task-master/internal/model"
	"task-master/internal/voice"
	"task-master/pkg/response"
)

const monthFormat = "2006-01"

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate(h.loc)
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errEmptyID
	}
	return req, req.validate()
}

func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processDateQuery reads ?date=YYYY-MM-DD. Absent means today, signalled by
// the zero time.
func (h *handler) processDateQuery(c *gin.Context) (time.Time, error) {
	return parseDate(c.Query("date"), h.loc)
}

// processMonthQuery reads ?month=YYYY-MM.
func (h *handler) processMonthQuery(c *gin.Context) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("month"))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(monthFormat, raw, h.loc)
	if err != nil {
		return time.Time{}, errInvalidMonth
	}
	return t, nil
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(response.DateFormat, raw, loc)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// parseClock turns "HH:MM" into a two-digit voice.Time. Empty stays empty so
// the use case applies its default.
func parseClock(raw string) (voice.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return voice.Time{}, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return voice.Time{}, errInvalidTime
	}
	return voice.Time{Hours: t.Format("15"), Minutes: t.Format("04")}, nil
}

// parsePriority accepts an empty value, which the store defaults to medium.
func parsePriority(raw string) (model.Priority, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	p, ok := model.ParsePriority(raw)
	if !ok {
		return "", errInvalidPrio
	}
	return p, nil
}
