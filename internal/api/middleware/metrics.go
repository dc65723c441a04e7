package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver records one handled request.
type RequestObserver interface {
	ObserveRequest(method, endpoint string, seconds float64)
}

// RequestMetrics counts requests by method and matched route and measures
// their latency. Scrapes of metricsPath are not counted.
func RequestMetrics(obs RequestObserver, metricsPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == metricsPath {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = c.Request().URL.Path
			}
			obs.ObserveRequest(c.Request().Method, endpoint, time.Since(start).Seconds())
			return err
		}
	}
}
