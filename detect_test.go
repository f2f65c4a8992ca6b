package linestruct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linestruct/linestruct"
)

func TestClassifyJSON(t *testing.T) {
	assert.Equal(t, linestruct.FormatJSON, linestruct.Classify(`{"entityName":"X","data":[]}`))
	assert.Equal(t, linestruct.FormatJSON, linestruct.Classify(`[1,2,3]`))
}

func TestClassifyLineStruct(t *testing.T) {
	text := "EntityName:Person\nschema:id:int¦name:string\n1¦Alice"
	assert.Equal(t, linestruct.FormatLineStruct, linestruct.Classify(text))
}

func TestClassifyOther(t *testing.T) {
	assert.Equal(t, linestruct.FormatOther, linestruct.Classify("just some plain text"))
	assert.Equal(t, linestruct.FormatOther, linestruct.Classify(""))
}

func TestClassifyBracketShapedButInvalidJSONFallsThrough(t *testing.T) {
	assert.Equal(t, linestruct.FormatOther, linestruct.Classify("{not valid json}"))
}

func TestClassifyEntityPrefixedButStructurallyInvalid(t *testing.T) {
	text := "EntityName:Person\ninvalid_schema\n1¦Alice"
	assert.Equal(t, linestruct.FormatOther, linestruct.Classify(text))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", linestruct.FormatJSON.String())
	assert.Equal(t, "linestruct", linestruct.FormatLineStruct.String())
	assert.Equal(t, "other", linestruct.FormatOther.String())
}
