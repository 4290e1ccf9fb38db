package constvars

// Validation messages for request DTOs, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"datetime": "must match the format %s",
	"role":     "must be one of admin, dentist, receptionist",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientAttachmentNotFound            = "attachment not found"
	ErrClientFileMissing                   = "no file found in the request"
	ErrClientFileTooLarge                  = "uploaded file exceeds the maximum allowed size of %d MB"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseDate            = "cannot parse date"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "failed processing request"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevPatientNotExists           = "patient does not exist"
	ErrDevAppointmentNotExists       = "appointment does not exist"
	ErrDevAttachmentNotExists        = "attachment does not exist within the patient record"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevMultipartFileMissing       = "multipart form has no file field"
	ErrDevFileSizeExceedsLimit       = "file size exceeds the configured limit"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevRoleNotAllowed            = "role is not in the allowed list for this route"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisGetNoData  = "failed to get data from redis with key: %s"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Object storage messages
	ErrDevStorageFailedToCreateObject = "failed to create object in bucket: %s"
	ErrDevStorageFailedToRemoveObject = "failed to remove object from bucket: %s"
)
