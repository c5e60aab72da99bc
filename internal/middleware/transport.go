package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const userAgent = "blogdesk"

// RoundTripperFunc lets a plain function act as an http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// LogRequest logs every outgoing request with its status and duration.
func LogRequest() func(next http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			log.Tracef(" ====> request [%s] url: [%s]", req.Method, req.URL)

			resp, err := next.RoundTrip(req)
			if err != nil {
				log.Debugf(" <==== request [%s] url: [%s] failed after %s: %s", req.Method, req.URL, time.Since(start), err)
				return nil, err
			}

			log.Tracef(" <==== request [%s] url: [%s] status: %d, took %s", req.Method, req.URL, resp.StatusCode, time.Since(start))
			return resp, nil
		})
	}
}

// UserAgent sets the User-Agent header when the request has none.
func UserAgent() func(next http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("User-Agent") == "" {
				// RoundTrip must not modify the caller's request
				req = req.Clone(req.Context())
				req.Header.Set("User-Agent", userAgent)
			}
			return next.RoundTrip(req)
		})
	}
}

// Chain applies middlewares so the first one is the outermost.
func Chain(base http.RoundTripper, middlewares ...func(http.RoundTripper) http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base = middlewares[i](base)
	}
	return base
}
