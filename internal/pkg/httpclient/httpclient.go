package httpclient

import (
	"umrah-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerTypeConsecutive = "consecutive"
	BreakerTypeErrorRate   = "error_rate"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case BreakerTypeErrorRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.ErrorRateMinSample)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailure)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(cfg.Timeout, 0, nil)
	client.BreakerLookup = func(_ *circuit.HTTPClient, _ interface{}) *circuit.Breaker {
		return cb
	}
	return client
}
