package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mom-planner/internal/plan"
	pkgErrors "mom-planner/pkg/errors"
	"mom-planner/pkg/response"
)

// CreateSession godoc
// @Summary     Create a planning session
// @Description Creates an empty session holding an input form, a plan and the reminder switch.
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// GetSession godoc
// @Summary     Get a session
// @Description Returns the input form and the current plan as display cards. Dates follow Accept-Language.
// @Tags        Sessions
// @Produce     json
// @Param       id              path   string true  "Session ID"
// @Param       Accept-Language header string false "Locale for due dates"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetSession(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// SetInput godoc
// @Summary     Replace the input text
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body setInputReq true "Input text"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Form is busy"
// @Router      /api/v1/sessions/{id}/input [PUT]
func (h *handler) SetInput(c *gin.Context) {
	ctx := c.Request.Context()

	var req setInputReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetInput(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.fail(c, err, output)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// UploadPDF godoc
// @Summary     Fill the input from a PDF
// @Description Extracts the text of every page. An unreadable file leaves a fallback message in the input.
// @Tags        Sessions
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     string true "Session ID"
// @Param       file formData file   true "PDF file"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Form is busy"
// @Failure     413 {object} response.Resp "File too large"
// @Router      /api/v1/sessions/{id}/input/pdf [POST]
func (h *handler) UploadPDF(c *gin.Context) {
	ctx := c.Request.Context()

	filename, file, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UploadPDF(ctx, plan.UploadPDFInput{
		SessionID: c.Param("id"),
		Filename:  filename,
		File:      file,
		Size:      file.Size(),
	})
	if err != nil {
		h.fail(c, err, output)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// Generate godoc
// @Summary     Generate today's plan
// @Description Sends the input to the model once and replaces the plan with the validated result.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Session ID"
// @Param       body body generateReq false "Optional input override, specifications and tone"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Empty input or unknown tone"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Busy or cancelled"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Plan could not be created"
// @Router      /api/v1/sessions/{id}/plan [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput(c.Param("id")))
	if err != nil {
		var genErr *plan.GenerationError
		if errors.As(err, &genErr) {
			h.l.Errorf(ctx, "uc.Generate: %v", err)
		}
		h.fail(c, err, output)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// CancelGeneration godoc
// @Summary     Cancel plan generation
// @Description Aborts the running request. Its result, if it still arrives, is discarded.
// @Tags        Plan
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/plan/generation [DELETE]
func (h *handler) CancelGeneration(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CancelGeneration(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// UpdateDueDate godoc
// @Summary     Set an item's due date
// @Description Stores the raw value; display formatting happens on read.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       id    path string     true "Session ID"
// @Param       index path int        true "Item index"
// @Param       body  body dueDateReq true "Due date"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/plan/items/{index}/due-date [PATCH]
func (h *handler) UpdateDueDate(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	var req dueDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateDueDate(ctx, req.toInput(c.Param("id"), index))
	if err != nil {
		h.fail(c, err, output)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// UpdateStatus godoc
// @Summary     Set an item's status
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       id    path string    true "Session ID"
// @Param       index path int       true "Item index"
// @Param       body  body statusReq true "Not Started, In Progress or Completed"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/plan/items/{index}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, req.toInput(c.Param("id"), index))
	if err != nil {
		h.fail(c, err, output)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// NotifyItem godoc
// @Summary     Send an item's reminder now
// @Description Requests permission first when it has not been decided yet.
// @Tags        Notifications
// @Produce     json
// @Param       id    path string true "Session ID"
// @Param       index path int    true "Item index"
// @Success     200 {object} notifyResp
// @Failure     403 {object} response.Resp "Notifications blocked"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "No notification channel"
// @Router      /api/v1/sessions/{id}/plan/items/{index}/notify [POST]
func (h *handler) NotifyItem(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.NotifyItem(ctx, plan.NotifyItemInput{SessionID: c.Param("id"), Index: index})
	if err != nil {
		h.respondError(c, err, map[string]interface{}{
			"permission": newPermissionResp(output.Permission),
		})
		return
	}

	response.OK(c, h.newNotifyResp(output))
}

// SetReminders godoc
// @Summary     Turn timed reminders on or off
// @Description While on, each item's reminder fires at its start time.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Session ID"
// @Param       body body remindersReq true "Switch"
// @Success     200 {object} sessionResp
// @Failure     403 {object} response.Resp "Notifications blocked"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/reminders [PUT]
func (h *handler) SetReminders(c *gin.Context) {
	ctx := c.Request.Context()

	var req remindersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetReminders(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.fail(c, err, output)
		return
	}

	response.OK(c, h.newSessionResp(output, h.locale(c)))
}

// GetPermission godoc
// @Summary     Notification permission
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} permissionResp
// @Router      /api/v1/notifications/permission [GET]
func (h *handler) GetPermission(c *gin.Context) {
	response.OK(c, newPermissionResp(h.uc.Permission(c.Request.Context())))
}

// RequestPermission godoc
// @Summary     Request notification permission
// @Description Only an undecided permission changes.
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} permissionResp
// @Router      /api/v1/notifications/permission [POST]
func (h *handler) RequestPermission(c *gin.Context) {
	ctx := c.Request.Context()

	perm, err := h.uc.RequestPermission(ctx)
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, newPermissionResp(perm))
}

// respondError maps err to its HTTP error. Errors with no mapping are logged
// and answered with a bare 500.
func (h *handler) respondError(c *gin.Context, err error, data map[string]interface{}) {
	mapped := h.mapError(err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(mapped, &httpErr) {
		h.l.Errorf(c.Request.Context(), "plan.delivery.http: unexpected error: %v", err)
		response.InternalError(c, err)
		return
	}
	response.Error(c, httpErr, data)
}

// fail renders err and, when the session is known, its current state.
func (h *handler) fail(c *gin.Context, err error, output plan.SessionOutput) {
	var data map[string]interface{}
	if output.Session.ID != "" {
		data = map[string]interface{}{"session": h.newSessionResp(output, h.locale(c))}
	}
	h.respondError(c, err, data)
}
