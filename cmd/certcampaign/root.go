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


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

const (
	defaultConfigFile = "repository/conf/deployment.yaml"
	defaultEnvFile    = ".env"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	home       string
	configFile string
	envFile    string
	logLevel   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "certcampaign",
		Short: "Create and activate access certification campaigns",
		Long: `certcampaign resolves an identity, a reviewer and a set of access profiles by name and
creates a search certification campaign covering exactly those access profiles.

Secrets are read from the environment or from a .env file in the home directory:
  CERTCAMPAIGN_CLIENT_ID, CERTCAMPAIGN_CLIENT_SECRET  client credentials mode
  CERTCAMPAIGN_ACCESS_TOKEN                           static token mode`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initialize()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.home, "home", "", "home directory holding the repository/conf and .env files (default: working directory)")
	flags.StringVar(&opts.configFile, "config", "", "deployment configuration file (default: <home>/"+defaultConfigFile+")")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file holding the secrets (default: <home>/"+defaultEnvFile+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default: $CERTCAMPAIGN_LOG_LEVEL or info)")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.AddCommand(newRunCmd(opts), newValidateCmd(opts), newVersionCmd())
	return cmd
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer log.Sync()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitCodeSuccess
	}

	fmt.Fprintln(stderr, "Error:", err)
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitCodeUnexpected
}

// initialize loads the dotenv file and sets up the logger.
func (o *rootOptions) initialize() error {
	if o.home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return newExitError(exitCodeUnexpected, fmt.Errorf("failed to get the working directory: %w", err))
		}
		o.home = dir
	}

	envFile, optional := o.envFile, false
	if envFile == "" {
		envFile, optional = filepath.Join(o.home, defaultEnvFile), true
	}
	if err := config.LoadEnvFile(envFile, optional); err != nil {
		return newExitError(exitCodeConfig, err)
	}

	if err := log.InitLogger(o.logLevel); err != nil {
		return newExitError(exitCodeConfig, err)
	}
	log.GetLogger().Debug("Using home directory", zap.String("home", o.home))
	return nil
}

// loadConfig loads and validates the deployment configuration. The default file may be absent,
// an explicitly given one may not.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	configFile, optional := o.configFile, false
	if configFile == "" {
		configFile, optional = filepath.Join(o.home, defaultConfigFile), true
	}

	cfg, err := config.LoadConfig(configFile, optional)
	if err != nil {
		return nil, newExitError(exitCodeConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, newExitError(exitCodeConfig, err)
	}
	return cfg, nil
}
