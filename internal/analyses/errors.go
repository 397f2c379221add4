package analyses

// Error codes returned in the error envelope.
const (
	ErrorCodeValidation       = "validation_error"
	ErrorCodePayloadTooLarge  = "payload_too_large"
	ErrorCodeUnsupportedMedia = "unsupported_media_type"
	ErrorCodeEmptyText        = "empty_text"
	ErrorCodeExtraction       = "extraction_failed"
	ErrorCodeUnavailable      = "unavailable"
	ErrorCodeInternal         = "internal_error"
)

// Failure reasons recorded in metrics.
const (
	failureInvalidInput = "invalid_input"
	failureEngine       = "engine"
)
