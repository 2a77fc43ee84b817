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

	"github.com/asgardeo/certcampaign/internal/runner"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and the input file without calling the platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.loadConfig(); err != nil {
				return err
			}
			if _, svcErr := runner.LoadInput(inputFile); svcErr != nil {
				return serviceExitError(svcErr)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration and input file are valid.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "campaign.txt", "key=value campaign input file")
	return cmd
}
