package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatDocumentNo builds a zero-padded document number from a prefix and
// a running sequence, e.g. FormatDocumentNo("PI-", 12) => "PI-000012".
func FormatDocumentNo(prefix string, number int) string {
	return fmt.Sprintf("%s%06d", prefix, number)
}

// GenerateItemCode generates a unique catalog item code
func GenerateItemCode() string {
	return "ITM-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateBranchCode generates a unique branch code
func GenerateBranchCode() string {
	return "BR-" + strings.ToUpper(uuid.New().String()[:6])
}
