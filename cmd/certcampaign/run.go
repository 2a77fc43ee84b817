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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asgardeo/certcampaign/internal/managers"
	"github.com/asgardeo/certcampaign/internal/runner"
)

type runOptions struct {
	inputFile string
	dryRun    bool
	output    string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve the inputs, then create and activate the campaign",
		Long: `Reads the key=value input file, resolves the identity, the reviewer and the access profiles,
then creates and activates the certification campaign. A report of the run is written to
standard output.

Exit codes: 0 success, 1 unexpected error, 2 configuration error, 3 authentication error,
4 unresolved input, 5 campaign creation failed, 6 campaign created but not activated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != runner.FormatYAML && opts.output != runner.FormatJSON {
				return newExitError(exitCodeConfig, fmt.Errorf("unsupported output format '%s'", opts.output))
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			factory, err := managers.NewServiceManager(cfg, root.home)
			if err != nil {
				return newExitError(exitCodeConfig, err)
			}

			report, svcErr := runner.NewRunner(factory).Run(cmd.Context(), runner.RunOptions{
				InputFile: opts.inputFile,
				DryRun:    opts.dryRun,
			})
			if err := report.Render(cmd.OutOrStdout(), opts.output); err != nil {
				return newExitError(exitCodeUnexpected, err)
			}
			if svcErr != nil {
				return serviceExitError(svcErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "input", "i", "campaign.txt", "key=value campaign input file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "resolve the inputs and print the campaign without creating it")
	cmd.Flags().StringVarP(&opts.output, "output", "o", runner.FormatYAML, "report format: yaml or json")
	return cmd
}
