/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of errors raised for structurally invalid
// requests such as a control point id the shape kind does not define.
var ErrInvalidArgument = errors.New("invalid argument")

// ControlPointError reports a control point id outside the kind's table.
type ControlPointError struct {
	Kind Kind
	ID   ControlPointID
}

func (e *ControlPointError) Error() string {
	return fmt.Sprintf("shape %s has no control point %d", e.Kind, e.ID)
}

func (e *ControlPointError) Unwrap() error { return ErrInvalidArgument }

// IndexError reports a control point index out of range.
type IndexError struct {
	Kind  Kind
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("shape %s has no control point at index %d", e.Kind, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrInvalidArgument }
