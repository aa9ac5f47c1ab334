package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSessionUpload CachePrefix = "UPLOAD_"
)

const (
	SessionCookieName = "insight_session"
	UploadFormField   = "file"

	QueryLoadRoutes = "load_routes"
	QueryInsert     = "insert_routes"
)
