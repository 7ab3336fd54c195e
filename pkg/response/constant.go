package response

const (
	// MessageSuccess is the message attached to every OK envelope.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from 500 responses.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500 responses.
	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat are the wire formats for Date/DateTime.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
