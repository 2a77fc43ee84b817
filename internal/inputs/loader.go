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

// Package inputs reads the key=value campaign input file and turns it into a validated campaign input.
package inputs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Load reads the input file at the given path. A missing or unreadable file yields an empty
// mapping and a descriptive error.
func Load(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, fmt.Errorf("input file '%s' not found", path)
		}
		return map[string]string{}, fmt.Errorf("error reading input file '%s': %w", path, err)
	}
	defer file.Close()

	values, err := Parse(file)
	if err != nil {
		return map[string]string{}, fmt.Errorf("error reading input file '%s': %w", path, err)
	}
	return values, nil
}

// Parse reads key=value lines. Each line is split on its first '=' and both sides are trimmed.
// Lines without '=' are ignored. A repeated key keeps the last value.
func Parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Write serializes the mapping as key=value lines in key order.
func Write(w io.Writer, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	for _, key := range keys {
		if strings.ContainsAny(key, "=\n\r") || strings.ContainsAny(values[key], "\n\r") {
			return fmt.Errorf("entry '%s' cannot be written as a single key=value line", key)
		}
		if _, err := fmt.Fprintf(bw, "%s=%s\n", key, values[key]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
