package constants

const (
	MsgStorageUnavailable  = "Route storage is unavailable"
	MsgUploadParseFailed   = "Uploaded file could not be read"
	MsgUploadMissingFile   = "No file provided in the upload form"
	MsgUploadTooLarge      = "Uploaded file is too large"
	MsgInsufficientData    = "Not enough valid data for prediction"
	MsgNoDataToChart       = "No data available for the selected category"
	MsgInvalidDistance     = "Distance must be between 100 and 10000 km in steps of 100"
	MsgInvalidRequestBody  = "Invalid request body"
	MsgTooManyRequests     = "Too many requests"
	MsgInternalServerError = "Internal server error"
)
