package board

import (
	"fmt"
	"regexp"
	"strings"
)

// externalIDPattern is the CDSID-like corporate identifier shape: a letter
// followed by 2 to 7 letters or digits.
var externalIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{2,7}$`)

// ValidatePerson rejects a person before any write is attempted.
func ValidatePerson(p Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if p.ExternalID != "" && !externalIDPattern.MatchString(p.ExternalID) {
		return &ValidationError{
			Field:   "externalId",
			Message: fmt.Sprintf("%q is not a valid identifier", p.ExternalID),
		}
	}
	return nil
}

// ValidateProduct rejects a product before any write is attempted.
func ValidateProduct(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return &ValidationError{Field: "endDate", Message: "end date before start date"}
	}
	return nil
}

// ValidateTag rejects a tag before any write is attempted.
func ValidateTag(t Tag) error {
	if strings.TrimSpace(t.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	switch t.Kind {
	case TagKindRole, TagKindPersonTag, TagKindProductTag, TagKindLocation:
		return nil
	default:
		return &ValidationError{Field: "kind", Message: fmt.Sprintf("unknown tag kind %q", t.Kind)}
	}
}

// ValidateAssignment enforces the end-after-start invariant.
func ValidateAssignment(a Assignment) error {
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return &ValidationError{Field: "endDate", Message: "end date before start date"}
	}
	return nil
}
