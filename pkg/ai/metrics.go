// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess       = "success"
	outcomeQuotaExceeded = "quota_exceeded"
	outcomeError         = "error"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfhl_ai_requests_total",
			Help: "Total number of generative AI requests by outcome",
		},
		[]string{"outcome"},
	)

	aiRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bfhl_ai_request_duration_seconds",
			Help:    "Generative AI request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func observe(start time.Time, outcome string) {
	aiRequestDuration.Observe(time.Since(start).Seconds())
	aiRequestsTotal.WithLabelValues(outcome).Inc()
}
