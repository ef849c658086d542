package parcel

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const trackingAttempts = 32

// newTrackingNumber draws PKG-<UTC year>-<4 digits> candidates until one is
// free of collisions with existing parcels. The digit space is small by
// contract, so exhaustion is reported rather than looped on forever.
func (s *Parcel) newTrackingNumber(ctx context.Context) (string, error) {
	year := time.Now().UTC().Year()

	for i := 0; i < trackingAttempts; i++ {
		candidate := fmt.Sprintf("PKG-%d-%04d", year, rand.IntN(10000))

		exists, err := s.repository.TrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("tracking number check: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrTrackingExhausted
}
