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

// Package cert builds the TLS configuration used for calls to the identity platform.
package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"path/filepath"

	"github.com/asgardeo/certcampaign/internal/system/config"
)

// GetTLSConfig loads the trusted CA bundle and the optional client certificate configured for the
// outbound client. It returns nil when nothing is configured so that the system defaults apply.
func GetTLSConfig(cfg *config.HTTPConfig, homeDirectory string) (*tls.Config, error) {
	if cfg.CAFile == "" && cfg.CertFile == "" {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if cfg.CAFile != "" {
		caFilePath := resolvePath(homeDirectory, cfg.CAFile)
		caCert, err := os.ReadFile(caFilePath)
		if err != nil {
			return nil, errors.New("failed to read CA certificate file at " + caFilePath + ": " + err.Error())
		}

		caCertPool, err := x509.SystemCertPool()
		if err != nil || caCertPool == nil {
			caCertPool = x509.NewCertPool()
		}
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("no valid certificates found in " + caFilePath)
		}
		tlsConfig.RootCAs = caCertPool
	}

	if cfg.CertFile != "" {
		certFilePath := resolvePath(homeDirectory, cfg.CertFile)
		keyFilePath := resolvePath(homeDirectory, cfg.KeyFile)

		if _, err := os.Stat(certFilePath); os.IsNotExist(err) {
			return nil, errors.New("certificate file not found at " + certFilePath)
		}
		if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
			return nil, errors.New("key file not found at " + keyFilePath)
		}

		clientCert, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
		if err != nil {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{clientCert}
	}

	return tlsConfig, nil
}

func resolvePath(homeDirectory, path string) string {
	if filepath.IsAbs(path) || homeDirectory == "" {
		return path
	}
	return filepath.Join(homeDirectory, path)
}
