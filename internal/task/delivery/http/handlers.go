package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "task-master/pkg/errors"
	"task-master/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns tasks in stored order, filtered by completion state and a case-insensitive search over title and description.
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "all (default), active or completed"
// @Param       q      query string false "Search text"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.List", err, nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Create godoc
// @Summary     Create a task
// @Description Appends a new task. The due date is due_date when given, otherwise date (default today) at time (default 12:00).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Create", err, nil)
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Reorder godoc
// @Summary     Reorder tasks
// @Description Stores the tasks in the given order. ids must name every task exactly once.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body reorderReq true "New order"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [PUT]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.Reorder(ctx, req.IDs)
	if err != nil {
		h.fail(c, "uc.Reorder", err, nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.Detail", err, nil)
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(t)})
}

// Update godoc
// @Summary     Replace a task
// @Description Replaces the whole record. Unknown ids leave the collection unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Full task"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, req.toTask())
	if err != nil {
		h.fail(c, "uc.Update", err, nil)
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task by ID. Unknown ids leave the collection unchanged.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.Delete", err, nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ToggleComplete(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.ToggleComplete", err, nil)
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Share godoc
// @Summary     Shareable text
// @Description Plain-text rendering of a task for sharing.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} shareResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/share [GET]
func (h *handler) Share(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Share(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.Share", err, nil)
		return
	}

	response.OK(c, shareResp{Text: out.Text})
}

// fail maps err and writes the error envelope. Client errors are logged as
// warnings, everything else as errors.
func (h *handler) fail(c *gin.Context, op string, err error, data map[string]interface{}) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if he, ok := pkgErrors.AsHTTPError(mapped); ok && he.StatusCode < 500 {
		h.l.Warnf(ctx, "%s: %v", op, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
	response.Error(c, mapped, data)
}
