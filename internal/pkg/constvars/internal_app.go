package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACTOR_KEY                ContextKey = "actor"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "SHTNM_SVC_"
)

// Roles
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Authorization objects and actions understood by the capability enforcer
const (
	ResourcePatients      = "patient"
	ResourceAppointments  = "appointment"
	ResourcePrescriptions = "prescription"
	ResourceLabReports    = "lab-report"
	ResourceDocuments     = "document"
	ResourceMedicines     = "medicine"
	ResourceHospitals     = "hospital"
	ResourceUsers         = "user"

	ActionCreate   = "create"
	ActionRead     = "read"
	ActionList     = "list"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionRegister = "register"
	ActionUpload   = "upload"
	ActionProcess  = "process"
	ActionWrite    = "write"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionPatients      = "patients"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionLabReports    = "lab_reports"
	MongoCollectionDocuments     = "documents"
	MongoCollectionMedicines     = "medicines"
	MongoCollectionHospitals     = "hospitals"
	MongoCollectionCounters      = "counters"
)

const (
	RedisKeySessionFormat        = "sehatnama:session:%s"
	RedisKeyDocumentProcessLock  = "sehatnama:lock:document-process:%s"
	RedisKeyCatalogVersionFormat = "sehatnama:catalog:%s:version"
	RedisKeyCatalogListFormat    = "sehatnama:catalog:%s:v%d:%s"
)

// Cached catalogs
const (
	CatalogMedicines = "medicines"
	CatalogHospitals = "hospitals"
)

const (
	RateLimiterGroupDocumentProcess = "DOCUMENT-PROCESS"
)

// Patient identifiers
const (
	PatientIDPrefix         = "P-"
	PatientIDFormat         = "P-%04d"
	PatientCounterName      = "patient"
	PatientCounterBase      = 1000
	PatientIDMaxInsertRetry = 5
	ManualEntryPatientID    = "MANUAL-ENTRY"
)

// Pagination
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = 100000
)

// Appointment statuses
const (
	AppointmentStatusScheduled  = "Scheduled"
	AppointmentStatusInProgress = "In Progress"
	AppointmentStatusCompleted  = "Completed"
	AppointmentStatusCancelled  = "Cancelled"
)

// Prescription statuses
const (
	PrescriptionStatusActive    = "Active"
	PrescriptionStatusCompleted = "Completed"
	PrescriptionStatusCancelled = "Cancelled"
)

// Lab report statuses
const (
	LabReportStatusPending    = "Pending"
	LabReportStatusInProgress = "In Progress"
	LabReportStatusCompleted  = "Completed"
	LabReportStatusCancelled  = "Cancelled"
)

// Document types
const (
	DocumentTypePrescription = "prescription"
	DocumentTypeLabReport    = "lab-report"
	DocumentTypeDoctorNote   = "doctor-note"
	DocumentTypeOther        = "other"

	DocumentDefaultTitle         = "Untitled Document"
	DocumentMaxUploadSizeInBytes = 10 << 20
	DocumentFormFileKey          = "file"
	DocumentStatusProcessed      = "Processed"
	DocumentStatusUploaded       = "Uploaded"
)

// Timeline
const (
	TimelineCategoryAppointment  = "appointment"
	TimelineCategoryPrescription = "prescription"
	TimelineCategoryLabReport    = "lab-report"
	TimelineCategoryDoctorNote   = "doctor-note"

	TimelineDefaultAppointmentTime  = "00:00"
	TimelineDefaultPrescriptionTime = "12:00"
	TimelineDefaultLabReportTime    = "12:00"
	TimelineDefaultDoctorName       = "Unassigned"
)

// Domain events
const (
	EventPatientDeleted    = "patient.deleted"
	EventDocumentUploaded  = "document.uploaded"
	EventDocumentProcessed = "document.processed"
)

const (
	BlobStoreDriverMinio  = "minio"
	BlobStoreDriverS3     = "s3"
	BlobStoreDriverMemory = "memory"

	EventBrokerRabbitMQ = "rabbitmq"
	EventBrokerKafka    = "kafka"
	EventBrokerNone     = "none"

	ExtractionEnginePlaceholder = "placeholder"
	ExtractionEngineHTTP        = "http"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)
