package serviceability

import (
	"net/http"

	"meatshop/internal/commons"
	"meatshop/internal/domain"

	"go.uber.org/zap"
)

type PincodeChecker interface {
	Check(pincode string) domain.ServiceabilityResult
}

type checkPincodeRequest struct {
	Pincode string `json:"pincode"`
}

type checkPincodeResponse struct {
	Pincode     string `json:"pincode"`
	Serviceable bool   `json:"serviceable"`
	Message     string `json:"message"`
}

type Controller struct {
	checker PincodeChecker
	logger  *zap.Logger
}

func NewController(checker PincodeChecker, logger *zap.Logger) *Controller {
	return &Controller{
		checker: checker,
		logger:  logger,
	}
}

func (c *Controller) HandleCheckPincode(w http.ResponseWriter, r *http.Request) {
	var req checkPincodeRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	result := c.checker.Check(req.Pincode)
	c.logger.Debug("pincode checked", zap.String("pincode", result.Pincode), zap.Bool("serviceable", result.Serviceable))

	commons.WriteJSON(w, http.StatusOK, checkPincodeResponse{
		Pincode:     result.Pincode,
		Serviceable: result.Serviceable,
		Message:     result.Message,
	}, c.logger)
}
