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

package bfhl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeSuccess = "success"

var (
	// Dispatch outcomes by operation. Failed outcomes are labelled with
	// their error code.
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfhl_operations_total",
			Help: "Total number of /bfhl dispatches by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bfhl_operation_duration_seconds",
			Help:    "Duration of /bfhl dispatches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
