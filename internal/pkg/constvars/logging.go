package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingActorIDKey        = "actor_id"
	LoggingActorRoleKey      = "actor_role"
	LoggingPatientIDKey      = "patient_id"
	LoggingDocumentIDKey     = "document_id"
	LoggingRecordIDKey       = "record_id"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingLocatorKey        = "locator"
	LoggingEventKey          = "event"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingOperationKey      = "operation"
	LoggingResourceKey       = "resource"
	LoggingActionKey         = "action"
	LoggingOutcomeKey        = "outcome"
	LoggingCountKey          = "count"
)
