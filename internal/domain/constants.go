package domain

// Default configuration values
const (
	DefaultSlotStepMinutes = 15
	DefaultHoldTTLSeconds  = 300
)

// Business validation constants
const (
	MinutesPerDay = 24 * 60

	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 120

	MinHoldTTLSeconds = 30
	MaxHoldTTLSeconds = 3600

	MinClientNameLength = 2
	MaxNotesLength      = 500

	MaxCancellationReasonLength = 500
)

// DefaultCancelReason причина отмены по умолчанию, если не указана
const DefaultCancelReason = "Отменено"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
