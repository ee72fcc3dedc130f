package http

import (
	"github.com/gin-gonic/gin"

	"voice-todo/pkg/response"
)

// SpeechState godoc
// @Summary     Speech state
// @Tags        Speech
// @Produce     json
// @Success     200 {object} speechResp
// @Router      /api/v1/todo/speech [GET]
func (h *handler) SpeechState(c *gin.Context) {
	response.OK(c, h.newSpeechResp())
}

// SpeechStart godoc
// @Summary     Start listening
// @Tags        Speech
// @Produce     json
// @Success     200 {object} speechResp
// @Router      /api/v1/todo/speech/start [POST]
func (h *handler) SpeechStart(c *gin.Context) {
	h.speech.Start()
	response.OK(c, h.newSpeechResp())
}

// SpeechStop godoc
// @Summary     Stop listening
// @Tags        Speech
// @Produce     json
// @Success     200 {object} speechResp
// @Router      /api/v1/todo/speech/stop [POST]
func (h *handler) SpeechStop(c *gin.Context) {
	h.speech.Stop()
	response.OK(c, h.newSpeechResp())
}

// SpeechReset godoc
// @Summary     Clear the transcript
// @Tags        Speech
// @Produce     json
// @Success     200 {object} speechResp
// @Router      /api/v1/todo/speech/reset [POST]
func (h *handler) SpeechReset(c *gin.Context) {
	h.speech.Reset()
	response.OK(c, h.newSpeechResp())
}

// SpeechTranscript godoc
// @Summary     Push a recognised fragment
// @Description Appends a fragment to the transcript. Ignored while not listening.
// @Tags        Speech
// @Accept      json
// @Produce     json
// @Param       body body transcriptReq true "Recognised text"
// @Success     200 {object} speechResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todo/speech/transcript [POST]
func (h *handler) SpeechTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if !h.speech.Append(req.Text) {
		h.l.Debugf(ctx, "http.SpeechTranscript: fragment dropped, not listening")
	}
	response.OK(c, h.newSpeechResp())
}

// SpeechSave godoc
// @Summary     Save the transcript as a task
// @Description Adds the transcript as a task and clears it. A blank transcript is ignored.
// @Tags        Speech
// @Accept      json
// @Produce     json
// @Param       body body saveReq false "Due date and category"
// @Success     200 {object} addResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     501 {object} response.Resp "Speech recognition unsupported"
// @Router      /api/v1/todo/speech/save [POST]
func (h *handler) SpeechSave(c *gin.Context) {
	ctx := c.Request.Context()

	req, due, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SaveTranscript(ctx, req.toInput(due))
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveTranscript: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddResp(output))
}
