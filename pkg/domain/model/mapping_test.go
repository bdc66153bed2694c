package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

func TestMappingValidate(t *testing.T) {
	t.Run("accepts known canonical columns", func(t *testing.T) {
		m := &model.Mapping{
			Columns: map[string]string{
				model.ColumnUsername: "User Name",
				model.ColumnGroup:    "Team",
			},
		}
		gt.NoError(t, m.Validate())
	})

	t.Run("rejects unknown canonical column", func(t *testing.T) {
		m := &model.Mapping{
			Columns: map[string]string{"department": "Dept"},
		}
		err := m.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("unknown canonical column")
	})

	t.Run("rejects empty source column", func(t *testing.T) {
		m := &model.Mapping{
			Columns: map[string]string{model.ColumnUsername: ""},
		}
		gt.Error(t, m.Validate())
	})
}

func TestMappingColumns(t *testing.T) {
	m := &model.Mapping{
		Columns: map[string]string{model.ColumnUsername: "User Name"},
	}

	t.Run("mapped column resolves to source header", func(t *testing.T) {
		gt.Equal(t, m.SourceColumn(model.ColumnUsername), "User Name")
	})

	t.Run("unmapped column resolves to itself", func(t *testing.T) {
		gt.Equal(t, m.SourceColumn(model.ColumnGroup), "group")
	})

	t.Run("canonicalize translates mapped headers", func(t *testing.T) {
		gt.Equal(t, m.Canonicalize("User Name"), model.ColumnUsername)
		gt.Equal(t, m.Canonicalize("group"), model.ColumnGroup)
		gt.Equal(t, m.Canonicalize("department"), "department")
	})
}
