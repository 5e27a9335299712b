package httpserver

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"study-tracker/internal/dispatch"
	"study-tracker/pkg/response"
)

var errMissingSpreadsheet = errors.New("missing spreadsheet id")

// execRead godoc
// @Summary     Dispatch a read action
// @Description Runs one of the registered read actions (getTasks, getSubjects, getAnalytics, ...). Domain failures answer 200 with success=false.
// @Tags        Exec
// @Produce     json
// @Param       action query string true "Action name"
// @Success     200 {object} response.Resp
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /exec [get]
func (srv *HTTPServer) execRead(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.spreadsheetID == "" {
		response.Error(c, errMissingSpreadsheet)
		return
	}

	data, err := srv.registry.DispatchRead(ctx, dispatch.Request{
		Action: c.Query("action"),
		Params: c.Request.URL.Query(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

type execWriteReq struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// execWrite godoc
// @Summary     Dispatch a write action
// @Description Runs one of the registered write actions (addTask, saveCompleteStudySession, update, ...). Domain failures answer 200 with success=false.
// @Tags        Exec
// @Accept      json
// @Produce     json
// @Param       body body execWriteReq true "Action and payload"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Unreadable body"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /exec [post]
func (srv *HTTPServer) execWrite(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.spreadsheetID == "" {
		response.Error(c, errMissingSpreadsheet)
		return
	}

	var req execWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	data, err := srv.registry.DispatchWrite(ctx, dispatch.Request{
		Action:  req.Action,
		Payload: req.Payload,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// runBootstrap godoc
// @Summary     Run the bootstrap sequence
// @Description Loads settings, subjects, categories and user data in order and publishes the result. Re-entrant starts are rejected while a run is in flight.
// @Tags        Bootstrap
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /bootstrap [get]
func (srv *HTTPServer) runBootstrap(c *gin.Context) {
	result, err := srv.sequencer.Run(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// bootstrapStatus godoc
// @Summary     Bootstrap state
// @Description Returns the overall sequence state and the last run's outcome.
// @Tags        Bootstrap
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /bootstrap/status [get]
func (srv *HTTPServer) bootstrapStatus(c *gin.Context) {
	response.OK(c, gin.H{
		"state": srv.sequencer.State(),
		"last":  srv.sequencer.Last(),
	})
}
