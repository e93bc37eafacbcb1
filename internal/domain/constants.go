package domain

// Booking reference format: prefix + YYYYMMDD + zero-padded suffix
const (
	ReferencePrefix     = "TMS"
	ReferenceDateFormat = "20060102"
	ReferenceSuffixMin  = 1
	ReferenceSuffixMax  = 999
)

// Pagination
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Field limits
const (
	MaxNameLength    = 100
	MaxServiceLength = 100
	MaxSubjectLength = 200
	MaxNotesLength   = 1000
	MaxMessageLength = 5000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
