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

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvType lists the value types that can be read from the environment.
type EnvType interface {
	string | int | bool | time.Duration
}

// GetEnv returns the value of the environment variable converted to the type of the default value.
// Empty or unparsable values yield the default.
func GetEnv[T EnvType](envName string, defaultValue T) T {
	value := os.Getenv(envName)
	if value == "" {
		return defaultValue
	}

	var ret any = defaultValue
	switch any(defaultValue).(type) {
	case string:
		ret = value
	case bool:
		if b, err := strconv.ParseBool(value); err == nil {
			ret = b
		}
	case int:
		if i, err := strconv.Atoi(value); err == nil {
			ret = i
		}
	case time.Duration:
		if d, err := time.ParseDuration(value); err == nil {
			ret = d
		}
	}

	return ret.(T)
}

// LoadEnvFile loads the variables of a dotenv file into the process environment. Variables that are
// already set are not overridden. When optional is true a missing file is not an error.
func LoadEnvFile(path string, optional bool) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
