// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for catalog API calls.
var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantview_api_requests_total",
		Help: "Total catalog API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plantview_api_request_duration_seconds",
		Help:    "Catalog API request duration in seconds by endpoint",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"endpoint"})

	apiErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantview_api_errors_total",
		Help: "Total catalog API errors by class",
	}, []string{"class"})
)
