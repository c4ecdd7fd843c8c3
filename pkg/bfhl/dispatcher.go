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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/bfhl-api/bfhl/pkg/ai"
	cerrors "github.com/bfhl-api/bfhl/pkg/errors"
	"github.com/bfhl-api/bfhl/pkg/numeric"
	"github.com/bfhl-api/bfhl/pkg/server"
)

// Operation keys accepted in a request body.
const (
	OpFibonacci = "fibonacci"
	OpPrime     = "prime"
	OpLCM       = "lcm"
	OpHCF       = "hcf"
	OpAI        = "AI"
)

// Metric labels for requests that never reach an operation.
const (
	opNone    = "none"
	opUnknown = "unknown"
)

type operationFunc func(ctx context.Context, value json.RawMessage) (any, error)

// Dispatcher validates a request body and runs the single operation it
// names. It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	config     Config
	completer  ai.Completer
	operations map[string]operationFunc
}

// NewDispatcher returns a Dispatcher for cfg. A nil completer means no AI
// credential is configured, and AI requests fail before any call is made.
func NewDispatcher(cfg Config, completer ai.Completer) *Dispatcher {
	d := &Dispatcher{
		config:    cfg.withDefaults(),
		completer: completer,
	}
	d.operations = map[string]operationFunc{
		OpFibonacci: d.fibonacci,
		OpPrime:     d.prime,
		OpLCM:       d.reduce(numeric.LCM),
		OpHCF:       d.reduce(numeric.GCD),
		OpAI:        d.answer,
	}
	return d
}

// Config returns the effective configuration, defaults applied.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Dispatch runs the operation named by body and returns the HTTP status
// and envelope to send. It never panics; unexpected faults become a 500
// envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) (status int, resp *Response) {
	start := time.Now()
	op := opNone

	defer func() {
		if r := recover(); r != nil {
			slog.Error("dispatch panicked",
				"requestID", server.RequestIDFromContext(ctx),
				"operation", op,
				"panic", r,
			)
			status, resp = d.reject(ctx, op, cerrors.NewWithContext(cerrors.ErrCodeInternal, MsgInternal,
				map[string]any{"panic": r}))
		}
		operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	fields, err := decodeBody(body)
	if err != nil {
		return d.reject(ctx, op, err)
	}

	if len(fields) != 1 {
		return d.reject(ctx, op, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, MsgKeyArity,
			map[string]any{"keys": len(fields)}))
	}

	var key string
	var value json.RawMessage
	for k, v := range fields {
		key, value = k, v
	}

	fn, ok := d.operations[key]
	if !ok {
		op = opUnknown
		return d.reject(ctx, op, invalidInput("unknown operation "+key))
	}
	op = key

	result, err := fn(ctx, value)
	if err != nil {
		return d.reject(ctx, op, err)
	}

	operationsTotal.WithLabelValues(op, outcomeSuccess).Inc()
	slog.Debug("dispatch succeeded",
		"requestID", server.RequestIDFromContext(ctx),
		"operation", op,
		"duration", time.Since(start).String(),
	)
	return http.StatusOK, d.success(result)
}

// reject maps err to a status and failure envelope. Structured errors keep
// their message; anything else is reported as an internal error.
func (d *Dispatcher) reject(ctx context.Context, op string, err error) (int, *Response) {
	code := cerrors.CodeOf(err)
	message := MsgInternal
	var se *cerrors.StructuredError
	if errors.As(err, &se) {
		message = se.Message
	}
	status := server.HTTPStatusFromCode(code)

	operationsTotal.WithLabelValues(op, string(code)).Inc()

	attrs := []any{
		"requestID", server.RequestIDFromContext(ctx),
		"operation", op,
		"status", status,
		"code", code,
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("dispatch failed", attrs...)
	} else {
		slog.Info("request rejected", attrs...)
	}

	return status, d.failure(message)
}

// decodeBody splits a JSON object into its top-level fields. An empty body
// is an empty object. Malformed JSON is invalid input; well-formed JSON that
// is not an object cannot be dispatched and is an internal error.
func decodeBody(body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	if !json.Valid(body) {
		return nil, invalidInput("malformed JSON")
	}

	if body[0] != '{' {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInternal, MsgInternal,
			map[string]any{"reason": "body is not a JSON object"})
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, MsgInternal, err)
	}
	return fields, nil
}

func invalidInput(reason string) error {
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, MsgInvalidInput,
		map[string]any{"reason": reason})
}

// fibonacci accepts any value. Counts that do not coerce to a non-negative
// integer yield an empty sequence; integer counts above the configured cap
// are rejected.
func (d *Dispatcher) fibonacci(_ context.Context, value json.RawMessage) (any, error) {
	n := toNumber(value)
	if numeric.IsInteger(n) && n > float64(d.config.MaxFibonacciTerms) {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, MsgInvalidInput,
			map[string]any{"reason": "too many terms", "max": d.config.MaxFibonacciTerms})
	}
	return numeric.Fibonacci(n), nil
}

func (d *Dispatcher) prime(_ context.Context, value json.RawMessage) (any, error) {
	nums, err := integers(value)
	if err != nil {
		return nil, err
	}

	primes := make([]int64, 0, len(nums))
	for _, n := range nums {
		if numeric.IsPrime(n) {
			primes = append(primes, int64(n))
		}
	}
	return primes, nil
}

func (d *Dispatcher) reduce(fn numeric.BinaryFunc) operationFunc {
	return func(_ context.Context, value json.RawMessage) (any, error) {
		nums, err := integers(value)
		if err != nil {
			return nil, err
		}

		ints := make([]*big.Int, len(nums))
		for i, n := range nums {
			ints[i] = toBigInt(n)
		}
		return numeric.Reduce(ints, fn), nil
	}
}

// answer sends the prompt to the completer and returns the first word of
// the reply.
func (d *Dispatcher) answer(ctx context.Context, value json.RawMessage) (any, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || value[0] != '"' {
		return nil, invalidInput("AI prompt must be a string")
	}
	var prompt string
	if err := json.Unmarshal(value, &prompt); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest, MsgInvalidInput, err)
	}

	if d.completer == nil {
		return nil, cerrors.New(cerrors.ErrCodeNotConfigured, MsgNotConfigured)
	}

	text, err := d.completer.Complete(ctx, prompt)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrQuotaExceeded):
			return nil, cerrors.Wrap(cerrors.ErrCodeRateLimitExceeded, MsgQuotaExceeded, err)
		case errors.Is(err, ai.ErrNotConfigured):
			return nil, cerrors.Wrap(cerrors.ErrCodeNotConfigured, MsgNotConfigured, err)
		default:
			return nil, cerrors.Wrap(cerrors.ErrCodeUpstream, MsgAIError, err)
		}
	}

	return ai.FirstToken(text), nil
}

// integers decodes a JSON array, coerces each element and keeps the
// integral ones in order.
func integers(value json.RawMessage) ([]float64, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || value[0] != '[' {
		return nil, invalidInput("expected an array")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(value, &elems); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest, MsgInvalidInput, err)
	}

	out := make([]float64, 0, len(elems))
	for _, e := range elems {
		if n := toNumber(e); numeric.IsInteger(n) {
			out = append(out, n)
		}
	}
	return out, nil
}
