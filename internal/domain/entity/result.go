package entity

// ActionResult is the uniform outcome of every cart and session action.
// Failures are reported here, never as an error value.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Succeeded builds a successful result.
func Succeeded(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

// Failed builds a failed result.
func Failed(message string) ActionResult {
	return ActionResult{Success: false, Message: message}
}
