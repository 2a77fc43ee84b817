/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */


// Package model defines the entities shared by the name resolvers and the campaign builder.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedShape is returned when a well-formed response does not have the expected layout.
	ErrUnexpectedShape = errors.New("unexpected response shape")
	// ErrNoCandidates is returned when the response holds an empty result list.
	ErrNoCandidates = errors.New("no matching entries")
	// ErrMissingID is returned when the first result does not carry an id.
	ErrMissingID = errors.New("first entry has no id")
)

// ResolvedEntity is a human readable name resolved to its platform identifier.
type ResolvedEntity struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// FirstCandidate extracts the first entry of the result list held in body together with the
// number of entries in the list. An empty envelope means that the body itself is the list,
// otherwise the list is read from the named field of a JSON object.
func FirstCandidate(body []byte, envelope string) (*ResolvedEntity, int, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response body: %w", err)
	}

	list := doc
	if envelope != "" {
		obj, ok := doc.(map[string]interface{})
		if !ok {
			return nil, 0, fmt.Errorf("%w: expected an object with a %q field", ErrUnexpectedShape, envelope)
		}
		list = obj[envelope]
	}

	entries, ok := list.([]interface{})
	if !ok {
		return nil, 0, fmt.Errorf("%w: expected a list", ErrUnexpectedShape)
	}
	if len(entries) == 0 {
		return nil, 0, ErrNoCandidates
	}

	first, ok := entries[0].(map[string]interface{})
	if !ok {
		return nil, len(entries), ErrMissingID
	}
	id, _ := first["id"].(string)
	if id == "" {
		return nil, len(entries), ErrMissingID
	}
	name, _ := first["name"].(string)

	return &ResolvedEntity{ID: id, Name: name}, len(entries), nil
}
