package lead

// CapturePath is where the landing page posts the signup form.
const CapturePath = "/api/lead"

// User-facing messages. Endpoint and Controller share them so both sides of
// the wire agree on wording.
const (
	MsgEmailRequired      = "Email required"
	MsgInvalidEmailFormat = "Invalid email format"
	MsgFailedToSendEmail  = "Failed to send email"
	MsgInternalError      = "Internal server error"
	MsgEmailSent          = "Email sent successfully"

	MsgSubscribed   = "Thanks for subscribing! Check your inbox for confirmation."
	MsgGenericError = "Something went wrong. Please try again."
	MsgNetworkError = "Network error. Please try again."
)

// LeadRequest is the capture payload. It is built once per submit and never mutated.
type LeadRequest struct {
	Email string `form:"email"`
}

// SuccessResponse is the body of a successful capture.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
