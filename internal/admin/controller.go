package admin

import (
	"net/http"

	"meatshop/internal/commons"

	"go.uber.org/zap"
)

type verifyRequest struct {
	PIN string `json:"pin"`
}

type Controller struct {
	verifier Verifier
	logger   *zap.Logger
}

func NewController(verifier Verifier, logger *zap.Logger) *Controller {
	return &Controller{
		verifier: verifier,
		logger:   logger,
	}
}

func (c *Controller) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	if err := c.verifier.Verify(r.Context(), req.PIN); err != nil {
		c.logger.Warn("admin verification rejected", zap.String("remoteAddr", r.RemoteAddr))
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, commons.SuccessResponse{
		Success: true,
		Message: "Access granted",
	}, c.logger)
}
