package domain

type ServiceabilityResult struct {
	Pincode     string
	Serviceable bool
	Message     string
}
