package provider

import (
	"context"
	"errors"
	"fmt"
	"net"

	"agri-advice/internal/domain/apperr"
)

// transportFailure classifies a failed HTTP round trip: deadline overruns
// become ProviderTimeout, everything else a generic provider error.
func transportFailure(err error, providerName string) *apperr.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Timeout(err, providerName)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.Timeout(err, providerName)
	}
	return apperr.FromProvider(err, providerName, 0, fmt.Sprintf("%s request failed", providerName))
}

// statusFailure translates a non-2xx provider response, preserving the
// provider's status code.
func statusFailure(providerName string, status int, body []byte) *apperr.AppError {
	return apperr.FromProvider(
		fmt.Errorf("unexpected HTTP status %d: %s", status, string(body)),
		providerName,
		status,
		fmt.Sprintf("%s returned status %d", providerName, status),
	)
}
