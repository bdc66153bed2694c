package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

func TestNewRunID(t *testing.T) {
	id := types.NewRunID()
	gt.B(t, strings.HasPrefix(id.String(), "run-")).True()
	gt.V(t, types.NewRunID()).NotEqual(id)
}

func TestStringTypes(t *testing.T) {
	gt.Equal(t, types.Username("alice").String(), "alice")
	gt.Equal(t, types.GroupName("admin").String(), "admin")
}
