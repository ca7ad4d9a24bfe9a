package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized line with module/action/request_id.
// Message should be a short summary; never log submission payloads
// (they carry phone numbers).
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(strings.TrimSpace(module)),
		strings.TrimSpace(action),
		strings.TrimSpace(requestID),
		message,
	)
}
