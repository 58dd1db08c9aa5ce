package cli

import (
	"github.com/pkg/errors"

	"github.com/pdrpinto/gridpath"
)

func parsePolicy(name string) (gridpath.ClosePolicy, error) {
	switch name {
	case gridpath.ClosePolicyOnPop.String():
		return gridpath.ClosePolicyOnPop, nil
	case gridpath.ClosePolicyOnPush.String():
		return gridpath.ClosePolicyOnPush, nil
	default:
		return 0, errors.Errorf("unknown close policy %q, want pop or push", name)
	}
}
