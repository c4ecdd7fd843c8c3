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

// Package serializer writes values as JSON, YAML or a flattened table.
//
// # Formats
//
// JSON:
//   - Indented, via encoding/json
//   - Values with MarshalJSON (e.g. *big.Int) keep their own encoding
//
// YAML:
//   - Two-space indent, via gopkg.in/yaml.v3
//
// Table:
//   - One FIELD/VALUE row per leaf, keys sorted
//   - Struct fields keyed by json tag, omitempty honored
//   - fmt.Stringer values printed with String()
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, resp); err != nil {
//	    return err
//	}
//
// HTTP handlers use RespondJSON, which encodes into a buffer before any
// header is written:
//
//	serializer.RespondJSON(w, http.StatusOK, resp)
package serializer
