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

// Envelope messages. Clients match on these strings.
const (
	MsgKeyArity         = "Exactly one key is allowed"
	MsgInvalidInput     = "Invalid input format"
	MsgNotConfigured    = "Gemini API key not configured"
	MsgQuotaExceeded    = "AI quota exceeded"
	MsgAIError          = "AI service error"
	MsgInternal         = "Internal Server Error"
	MsgMethodNotAllowed = "Method not allowed"
	MsgBodyTooLarge     = "Request body too large"
)

// Response is the envelope returned by every /bfhl and /health call.
// A successful response carries Data and no Message; a failed one carries
// Message and no Data.
type Response struct {
	IsSuccess     bool   `json:"is_success" yaml:"is_success"`
	OfficialEmail string `json:"official_email" yaml:"official_email"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
	Data          any    `json:"data,omitempty" yaml:"data,omitempty"`
}

func (d *Dispatcher) success(data any) *Response {
	return &Response{
		IsSuccess:     true,
		OfficialEmail: d.config.OfficialEmail,
		Data:          data,
	}
}

func (d *Dispatcher) failure(message string) *Response {
	return &Response{
		IsSuccess:     false,
		OfficialEmail: d.config.OfficialEmail,
		Message:       message,
	}
}
