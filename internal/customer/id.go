package customer

import (
	"crypto/rand"
	"fmt"
	"time"
)

// generateID creates a short random hex ID for customer sessions.
func generateID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// Fallback -- should never happen.
		return fmt.Sprintf("cust-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
