package utils

import "strings"

var serviceTypes = map[string]bool{
	"standard":       true,
	"deep":           true,
	"end_of_tenancy": true,
	"office":         true,
	"carpet":         true,
}

// NormalizeServiceType lower-cases and trims a service type name.
func NormalizeServiceType(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsValidServiceType reports whether the (normalized) name is a known
// cleaning service type.
func IsValidServiceType(name string) bool {
	return serviceTypes[NormalizeServiceType(name)]
}
