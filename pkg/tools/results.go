package tools

import (
	"encoding/json"
	"fmt"
)

// jsonDocument serializes a payload for insertion into the transcript as a
// tool-result message.
func jsonDocument(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal: %s"}`, err.Error())
	}
	return string(data)
}

// errorDocument serializes a tool-level failure. Tool failures are data for
// the model, never Go errors: the conversation turn must not crash because a
// collaborator did.
func errorDocument(message string) string {
	return jsonDocument(map[string]string{
		"status":  "error",
		"message": message,
	})
}
