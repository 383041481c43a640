// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingDependency matches every *MissingDependencyError under errors.Is.
var ErrMissingDependency = errors.New("dtree: missing dependency")

// MissingDependencyError reports a dependency that a handler declared but the
// container does not hold. It is a configuration bug, never a decline.
type MissingDependencyError struct {
	// Type is the requested type.
	Type reflect.Type
	// Have lists the types the container held at lookup time.
	Have []reflect.Type
}

func (e *MissingDependencyError) Error() string {
	if len(e.Have) == 0 {
		return fmt.Sprintf("dtree: no value of type %v in container (container is empty)", e.Type)
	}
	names := make([]string, len(e.Have))
	for i, t := range e.Have {
		names[i] = t.String()
	}
	return fmt.Sprintf("dtree: no value of type %v in container (have: %s)", e.Type, strings.Join(names, ", "))
}

// Is reports target == ErrMissingDependency.
func (e *MissingDependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// missingDependency panics with a *MissingDependencyError for t.
func missingDependency(c *Container, t reflect.Type) {
	panic(&MissingDependencyError{Type: t, Have: c.Types()})
}
