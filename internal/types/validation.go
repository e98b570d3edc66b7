package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Validation
// ------------------------------

// ValidateCompanyID ensures a numeric company id is usable in a path.
func ValidateCompanyID(id int) error {
	if id <= 0 {
		return fmt.Errorf("companyId must be a positive integer, got %d", id)
	}
	return nil
}

// ValidateUpdateKey ensures an update key is present and not blank.
func ValidateUpdateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("updateKey is required")
	}
	return nil
}

// ValidateKeywords ensures a search has something to search for.
func ValidateKeywords(keywords string) error {
	if strings.TrimSpace(keywords) == "" {
		return fmt.Errorf("keywords are required")
	}
	return nil
}
