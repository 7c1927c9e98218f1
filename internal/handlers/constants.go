package handlers

const (
	ErrInvalidJSON         = "Invalid JSON body"
	ErrInvalidUpload       = "Invalid file upload"
	ErrInternalServerError = "Internal server error"

	maxJSONBodySize = 1 << 20
)
