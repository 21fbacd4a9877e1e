package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/response"
)

// Command parses a free-form command and applies it to the calendar.
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	cmd, err := h.parser.ParseCommand(ctx, req.Text)
	if err != nil {
		if errors.Is(err, nlp.ErrEmptyInput) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "parser.ParseCommand: %v", err)
		response.InternalError(c, err)
		return
	}

	output, err := h.uc.Apply(ctx, cmd)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrUnsupportedIntent),
			errors.Is(err, calendar.ErrMissingDateTime),
			errors.Is(err, calendar.ErrMissingEventID):
			response.Error(c, err, map[string]interface{}{"intent": string(cmd.Intent)})
			return
		default:
			h.l.Errorf(ctx, "uc.Apply: %v", err)
			response.InternalError(c, err)
			return
		}
	}

	response.OK(c, newCommandResp(cmd, output))
}
