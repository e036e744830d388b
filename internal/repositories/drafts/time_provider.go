package drafts

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/realm-forge/internal/repositories/drafts TimeProvider

import "time"

// TimeProvider provides the current time, allowing tests to control
// timestamps and expiry.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the actual current time in UTC.
type RealTimeProvider struct{}

// Now returns the current time
func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
