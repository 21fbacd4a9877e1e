package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/response"
)

// Parse interprets a free-form command.
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseCommand(ctx, req.Text)
	if err != nil {
		if errors.Is(err, nlp.ErrEmptyInput) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ParseCommand: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}
