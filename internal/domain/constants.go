package domain

import "time"

// Business constants
const (
	// ServiceFeeRate фиксированная платформенная комиссия 5%
	ServiceFeeRate = 0.05

	// HoldTTL время жизни hold'а на слот
	HoldTTL = 10 * time.Minute

	// DefaultServiceDurationMinutes длительность по умолчанию, если услуга не указана
	DefaultServiceDurationMinutes = 120

	// DegradedCapacity вместимость каждого окна в синтетическом календаре
	DegradedCapacity = 1
)

// Degraded mode fallback zone constants
const (
	FallbackCoverageRadiusMiles = 25.0
	FallbackPriceMultiplier     = 1.0
)

// SentinelUnservedZip всегда отвечает "не обслуживается" —
// используется для демо сценария waitlist
const SentinelUnservedZip = "00000"

// Mock contractor для синтетического hold'а в зоне без контракторов
const (
	MockContractorID   = "mock-contractor"
	MockContractorName = "Rubens Partner"
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
