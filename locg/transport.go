package locg

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

// An error returned from the http client. Unfortunately it has no variable
// associated with it.
const errClientTimeoutString = "Client.Timeout exceeded"

// RetryRoundTripper retries connection-related failures with a fixed delay.
// The retrieval pipeline never retries on its own; wire this into the
// http.Client handed to NewAPI when retries are wanted. Requests here are
// bodyless GETs, so replaying them is safe.
type RetryRoundTripper struct {
	// Base is the wrapped transport. Defaults to http.DefaultTransport.
	Base http.RoundTripper
	// Attempts is the total number of tries. Defaults to 3.
	Attempts uint
	// Delay between tries. Defaults to 10 seconds.
	Delay time.Duration
}

// RoundTrip sends the request, retrying while the failure looks like a
// connection error. Any other failure is returned as-is on the first try.
func (rt *RetryRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	var response *http.Response
	err := retry.Do(func() error {
		var err error
		response, err = rt.base().RoundTrip(request)
		if err != nil && !isConnectionError(err) {
			return retry.Unrecoverable(err)
		}
		return err
	}, retry.Attempts(rt.attempts()), retry.Delay(rt.delay()), retry.LastErrorOnly(true))
	return response, err
}

func (rt *RetryRoundTripper) base() http.RoundTripper {
	if rt.Base != nil {
		return rt.Base
	}
	return http.DefaultTransport
}

func (rt *RetryRoundTripper) attempts() uint {
	if rt.Attempts > 0 {
		return rt.Attempts
	}
	return 3
}

func (rt *RetryRoundTripper) delay() time.Duration {
	if rt.Delay > 0 {
		return rt.Delay
	}
	return 10 * time.Second
}

// isConnectionError checks if the error is a connection-related error or not.
func isConnectionError(err error) bool {
	// Wish there was a better way to check the client time out error!
	if strings.Contains(err.Error(), errClientTimeoutString) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
