package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "historial_client",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome (success, rejected, invalid, error).",
		},
		[]string{"result"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "historial_client",
			Name:      "unauthorized_responses_total",
			Help:      "Backend 401 responses that forced the session to be cleared.",
		},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "historial_client",
			Name:      "http_requests_total",
			Help:      "Outgoing backend requests by method.",
		},
		[]string{"method"},
	)
)
