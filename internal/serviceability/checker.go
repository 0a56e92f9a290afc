package serviceability

import "meatshop/internal/domain"

const (
	messageAvailable      = "Service Available"
	messageNotServiceable = "Not Serviceable in this area"
)

// Checker answers whether deliveries are offered to a pincode. It is
// immutable after construction and safe for concurrent use.
type Checker struct {
	pincodes map[string]struct{}
}

func NewChecker(pincodes []string) *Checker {
	set := make(map[string]struct{}, len(pincodes))
	for _, p := range pincodes {
		set[p] = struct{}{}
	}
	return &Checker{pincodes: set}
}

func (c *Checker) IsServiceable(pincode string) bool {
	_, ok := c.pincodes[pincode]
	return ok
}

func (c *Checker) Check(pincode string) domain.ServiceabilityResult {
	serviceable := c.IsServiceable(pincode)

	message := messageNotServiceable
	if serviceable {
		message = messageAvailable
	}

	return domain.ServiceabilityResult{
		Pincode:     pincode,
		Serviceable: serviceable,
		Message:     message,
	}
}
