package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	// DefaultErrorMessage hides internals from clients on unexpected faults.
	DefaultErrorMessage = "internal server error"
)
