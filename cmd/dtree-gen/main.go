// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command dtree-gen writes the Inject0..InjectN arities of package dtree.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		maxArity int
		out      string
		pkg      string
	)

	cmd := &cobra.Command{
		Use:   "dtree-gen",
		Short: "Generate dependency-injection arities for dtree",
		Long: `dtree-gen writes Inject0 through InjectN, the compile-time checked
constructors that bind a function's parameters to a dtree.Container.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := Generate(pkg, maxArity)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s (Inject0..Inject%d)\n", out, maxArity)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxArity, "max", 6, "highest arity to generate")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&pkg, "package", "dtree", "package clause of the generated file")

	return cmd
}
