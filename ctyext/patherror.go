package ctyext

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// PathError is an error that occurred at a certain path within a value.
type PathError struct {
	Path cty.Path
	Err  error
}

func (e PathError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", PathString(e.Path), e.Err)
}

// PathString formats a cty path as a human readable string:
//
//	environment.variables["HOME"]
func PathString(path cty.Path) string {
	var sb strings.Builder
	for _, p := range path {
		switch step := p.(type) {
		case cty.GetAttrStep:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(step.Name)
		case cty.IndexStep:
			switch step.Key.Type() {
			case cty.String:
				fmt.Fprintf(&sb, "[%q]", step.Key.AsString())
			case cty.Number:
				i, _ := step.Key.AsBigFloat().Int64()
				fmt.Fprintf(&sb, "[%d]", i)
			}
		}
	}
	return sb.String()
}
