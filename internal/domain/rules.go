package domain

import (
	"regexp"
	"strings"
)

// serviceRequiredFields maps a lowercased service type to the ordered list of
// detail fields that must be filled in. Services not listed here accept any
// details payload.
var serviceRequiredFields = map[string][]string{
	"counseling":  {"fullName", "phone", "concern"},
	"baptism":     {"childName", "birthDate", "parentNames"},
	"wedding":     {"groomName", "brideName", "contactNumber"},
	"blessing":    {"personName", "blessingType"},
	"funeral":     {"deceasedName", "deceasedBirthDate", "dateOfDeath", "familyContact"},
	"christening": {"childName", "guardianName", "contactNumber"},
}

// numericOnlyFields lists detail fields that must contain digits only
var numericOnlyFields = map[string]struct{}{
	"phone":         {},
	"contactNumber": {},
	"familyContact": {},
}

// exclusiveServices lists service types that consume their date+slot
// entirely: no second booking may share the slot regardless of capacity
var exclusiveServices = map[string]struct{}{
	"funeral": {},
	"wedding": {},
}

var numericPattern = regexp.MustCompile(`^\d+$`)

// DetailsValidationError names the first failing detail field of a request.
// Validation is fail-fast: fields are checked in declaration order and the
// first failure wins.
type DetailsValidationError struct {
	Reason string
}

func (e *DetailsValidationError) Error() string {
	return e.Reason
}

// RequiredFieldsFor returns the required detail fields of a service type
func RequiredFieldsFor(service string) []string {
	return serviceRequiredFields[serviceKey(service)]
}

// IsExclusiveService reports whether the service occupies its date+slot
// exclusively (funeral, wedding)
func IsExclusiveService(service string) bool {
	_, ok := exclusiveServices[serviceKey(service)]
	return ok
}

// ValidateServiceDetails checks the details form of a service against the
// rule table. Returns nil when the form is complete, otherwise an error
// naming the first failing field.
func ValidateServiceDetails(service string, details Details) *DetailsValidationError {
	required := serviceRequiredFields[serviceKey(service)]
	if len(required) == 0 {
		return nil
	}

	if details == nil {
		return &DetailsValidationError{Reason: "Missing service details form"}
	}

	for _, field := range required {
		val := strings.TrimSpace(details[field])
		if val == "" {
			return &DetailsValidationError{Reason: "Missing required field: " + field}
		}
		if _, numeric := numericOnlyFields[field]; numeric && !numericPattern.MatchString(val) {
			return &DetailsValidationError{Reason: field + " must contain numbers only"}
		}
	}

	return nil
}

func serviceKey(service string) string {
	return strings.ToLower(strings.TrimSpace(service))
}
