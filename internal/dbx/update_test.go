package dbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_SkipsNil(t *testing.T) {
	name := "P1"
	var model *string

	set := Set(nil, "printer_name", &name)
	set = Set(set, "model", model)

	assert.Equal(t, []Assignment{{Column: "printer_name", Value: "P1"}}, set)
}

func TestBuildUpdate(t *testing.T) {
	set := []Assignment{
		{Column: "model", Value: "M-B"},
		{Column: "status", Value: "offline"},
	}

	query, args := BuildUpdate("printers", "printer_id", int64(7), set)

	assert.Equal(t, "UPDATE printers SET model = $1, status = $2 WHERE printer_id = $3", query)
	assert.Equal(t, []any{"M-B", "offline", int64(7)}, args)
}
