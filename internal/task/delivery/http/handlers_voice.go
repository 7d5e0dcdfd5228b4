package http

import (
	"github.com/gin-gonic/gin"

	"task-master/internal/task"
	"task-master/pkg/response"
)

// GetDraft godoc
// @Summary     Current voice draft
// @Tags        Voice
// @Produce     json
// @Param       session path string true "Session ID"
// @Success     200 {object} draftResp
// @Router      /api/v1/voice/sessions/{session} [GET]
func (h *handler) GetDraft(c *gin.Context) {
	ctx := c.Request.Context()

	draft, err := h.uc.Draft(ctx, c.Param("session"))
	if err != nil {
		h.fail(c, "uc.Draft", err, nil)
		return
	}

	response.OK(c, h.newDraftResp(draft))
}

// ApplyTranscript godoc
// @Summary     Feed a transcript
// @Description Applies recognized keyword segments to the session draft. Saying "submit" or "add task" stores the draft as a task.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       session path string        true "Session ID"
// @Param       body    body transcriptReq true "Transcript event"
// @Success     200 {object} transcriptResp
// @Failure     400 {object} response.Resp "Bad Request, e.g. submit without a title"
// @Router      /api/v1/voice/sessions/{session} [POST]
func (h *handler) ApplyTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ApplyTranscript(ctx, task.TranscriptInput{
		Session:    c.Param("session"),
		Transcript: req.Transcript,
	})
	if err != nil {
		h.fail(c, "uc.ApplyTranscript", err, map[string]interface{}{
			"draft": h.newDraftResp(out.Draft),
		})
		return
	}

	response.OK(c, h.newTranscriptResp(out))
}

// DiscardDraft godoc
// @Summary     Discard voice draft
// @Tags        Voice
// @Produce     json
// @Param       session path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/voice/sessions/{session} [DELETE]
func (h *handler) DiscardDraft(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DiscardDraft(ctx, c.Param("session")); err != nil {
		h.fail(c, "uc.DiscardDraft", err, nil)
		return
	}

	response.OK(c, nil)
}
