package http

import (
	"github.com/gin-gonic/gin"

	"voice-todo/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the filtered and sorted task view plus completion stats.
// @Tags        Todo
// @Produce     json
// @Param       filter   query string false "All, Pinned, Completed or Incomplete (default All)"
// @Param       category query string false "Category, empty or All for every category"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     501 {object} response.Resp "Speech recognition unsupported"
// @Router      /api/v1/todo/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Add a task
// @Description Adds a task. Blank text is ignored and answered with created=false.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} addResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/todo/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, due, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddTask(ctx, req.toInput(due))
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddResp(output))
}

// ToggleDone godoc
// @Summary     Toggle done
// @Description Flips the completion flag of a task.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todo/tasks/{id}/done [PATCH]
func (h *handler) ToggleDone(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleDone(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleDone: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Found {
		response.Error(c, errTaskNotFound, nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output))
}

// TogglePin godoc
// @Summary     Toggle pinned
// @Description Flips the pinned flag of a task.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todo/tasks/{id}/pin [PATCH]
func (h *handler) TogglePin(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.TogglePinned(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.TogglePinned: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Found {
		response.Error(c, errTaskNotFound, nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todo/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DeleteTask(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Found {
		response.Error(c, errTaskNotFound, nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output))
}

// Stats godoc
// @Summary     Completion stats
// @Tags        Todo
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/todo/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatsResp(output))
}

// Categories godoc
// @Summary     Categories
// @Description Preset categories and the categories currently in use.
// @Tags        Todo
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/todo/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCategoriesResp(output))
}
