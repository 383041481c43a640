// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/pkg/errors"
)

const header = `// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Code generated by dtree-gen. DO NOT EDIT.

package %s

import "context"

// Inject0 binds a function with no dependencies.
func Inject0[R any](f func() R) DepFn[R] {
	return func(_ context.Context, _ *Container) R {
		return f()
	}
}
`

var arityWords = []string{"", "one dependency", "two dependencies", "three dependencies",
	"four dependencies", "five dependencies", "six dependencies", "seven dependencies",
	"eight dependencies", "nine dependencies"}

func describeArity(n int) string {
	if n < len(arityWords) {
		return arityWords[n]
	}
	return fmt.Sprintf("%d dependencies", n)
}

// generateInject renders InjectN.
func generateInject(n int) string {
	var sb strings.Builder

	params := make([]string, n)
	args := make([]string, n)
	for i := range n {
		params[i] = fmt.Sprintf("A%d", i+1)
		args[i] = fmt.Sprintf("resolveAs[A%d](ctx, c)", i+1)
	}
	tps := strings.Join(params, ", ")

	fmt.Fprintf(&sb, "\n// Inject%d binds a function of %s.\n", n, describeArity(n))
	fmt.Fprintf(&sb, "func Inject%d[%s, R any](f func(%s) R) DepFn[R] {\n", n, tps, tps)
	sb.WriteString("\treturn func(ctx context.Context, c *Container) R {\n")
	fmt.Fprintf(&sb, "\t\treturn f(%s)\n", strings.Join(args, ", "))
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")

	return sb.String()
}

// Generate returns the gofmt-ed source of Inject0..InjectN for package pkg.
func Generate(pkg string, maxArity int) ([]byte, error) {
	if maxArity < 1 {
		return nil, errors.Errorf("max arity must be at least 1, got %d", maxArity)
	}
	if pkg == "" {
		return nil, errors.New("package name is required")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, header, pkg)
	for n := 1; n <= maxArity; n++ {
		sb.WriteString(generateInject(n))
	}

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}
	return src, nil
}
