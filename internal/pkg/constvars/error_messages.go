package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":            "is required",
	"email":               "must be a valid email",
	"min":                 "must be at least %s",
	"max":                 "must be at most %s",
	"gt":                  "must be greater than %s",
	"gte":                 "must be greater than or equal to %s",
	"lte":                 "must be less than or equal to %s",
	"oneof":               "must be one of [%s]",
	"dive":                "is invalid",
	"password":            "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"clock":               "must be a time of day in HH:MM format",
	"day":                 "must be a date in YYYY-MM-DD format",
	"staff_role":          "must be either 'doctor' or 'admin'",
	"patient_id":          "must be a patient identifier like P-1001",
	"appointment_status":  "must be one of [Scheduled, In Progress, Completed, Cancelled]",
	"prescription_status": "must be one of [Active, Completed, Cancelled]",
	"lab_report_status":   "must be one of [Pending, In Progress, Completed, Cancelled]",
	"document_type":       "must be one of [prescription, lab-report, doctor-note, other]",
	"required_if":         "is required when %s",
	"required_without":    "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"gt":               true,
	"gte":              true,
	"lte":              true,
	"oneof":            true,
	"required_if":      true,
	"required_without": true,
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
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientPatientAlreadyRegistered      = "this account already has a patient profile"
	ErrClientUserAlreadyLinked             = "this email already belongs to another patient profile"
	ErrClientMissingDemographics           = "missing required patient fields: %s"
	ErrClientPatientEmailRequired          = "email is required when registering a patient on behalf of someone"
	ErrClientInvalidFileExtension          = "file type is not allowed, allowed types: jpeg, jpg, png, gif, pdf, doc, docx"
	ErrClientInvalidFileContent            = "file content does not match its extension"
	ErrClientFileTooLarge                  = "file exceeds the maximum upload size of %d MB"
	ErrClientEmptyFile                     = "file is empty"
	ErrClientDocumentBeingProcessed        = "document is already being processed"
	ErrClientDocumentExtractionFailed      = "document could not be processed"
	ErrClientManualEntryNotAllowed         = "only staff can create manual entry appointments"
	ErrClientInvalidDateRange              = "invalid date range"
	ErrClientNothingToUpdate               = "request contains no fields to update"
	ErrClientCatalogNameExists             = "a %s with this name already exists"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevValidationFailed     = "validation failed"
	ErrDevURLParamIDValidation = "url param %s validation failed"
	ErrDevMissingRequestID     = "request id is missing from context"
	ErrDevMissingActor         = "authenticated actor is missing from context"
	ErrDevPermissionDenied     = "permission denied by access policy"
	ErrDevResourceNotFound     = "%s not found"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevPatientAlreadyLinked = "user already linked to a patient"
	ErrDevMissingDemographics  = "required demographic fields are missing"
	ErrDevPatientIDExhausted   = "could not allocate a unique patient identifier"
	ErrDevCannotParseMultipart = "cannot parse multipart form"
	ErrDevInvalidFile          = "uploaded file rejected"
	ErrDevDocumentLocked       = "document process lock is held by another request"
	ErrDevExtractionFailed     = "extraction engine failed"
	ErrDevTooManyRequests      = "rate limit exceeded"
	ErrDevNothingToUpdate      = "patch body is empty"
	ErrDevCannotParseDate      = "cannot parse date"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenExpired   = "token expired"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevAuthGenerateToken  = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
	ErrDevDBFailedToCountDocuments = "failed to count documents on database"
	ErrDevDBFailedToIterate        = "failed to iterate documents cursor"
	ErrDevDBDuplicateKey           = "duplicate key on insert"

	// Redis messages
	ErrDevRedisSet       = "failed to set value into redis"
	ErrDevRedisGet       = "failed to get value from redis"
	ErrDevRedisDelete    = "failed to delete key from redis"
	ErrDevRedisIncrement = "failed to increment key in redis"
	ErrDevRedisUnlock    = "failed to release lock"

	// Blob store messages
	ErrDevBlobPut      = "failed to put object into blob store"
	ErrDevBlobGet      = "failed to get object from blob store"
	ErrDevBlobNotFound = "object not found in blob store"
	ErrDevBlobDelete   = "failed to delete object from blob store"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered"
	ErrDevEventPublish           = "failed to publish domain event"
)
