package linestruct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linestruct/linestruct"
)

func TestToJSONPreservesKeyOrderAndTypes(t *testing.T) {
	text := "EntityName:Person\n" +
		"schema:id:int¦name:string¦active:bool¦height:float\n" +
		"1¦Alice¦true¦5.6"

	doc, err := linestruct.Decode(text, true)
	require.Nil(t, err)

	data, jerr := linestruct.ToJSON(doc)
	require.NoError(t, jerr)

	body := string(data)
	assert.Contains(t, body, `"entityName":"Person"`)

	idxID := indexOf(body, `"id"`)
	idxName := indexOf(body, `"name"`)
	idxActive := indexOf(body, `"active"`)
	idxHeight := indexOf(body, `"height"`)
	require.True(t, idxID < idxName && idxName < idxActive && idxActive < idxHeight,
		"expected key order id < name < active < height, got %s", body)

	assert.Contains(t, body, `"id":1`)
	assert.Contains(t, body, `"active":true`)
	assert.Contains(t, body, `"height":5.6`)
	assert.Contains(t, body, `"name":"Alice"`)
}

func TestFromJSONRoundTripsToLineStructEncode(t *testing.T) {
	jsonText := `{"entityName":"Person","data":[{"id":1,"name":"Alice","active":true}]}`

	doc, err := linestruct.FromJSON([]byte(jsonText))
	require.NoError(t, err)
	assert.Equal(t, "Person", doc.EntityName)
	require.Len(t, doc.Rows, 1)

	out, eerr := linestruct.Encode(doc)
	require.Nil(t, eerr)

	doc2, derr := linestruct.Decode(out, true)
	require.Nil(t, derr)
	assert.Equal(t, "1", nodeField(t, doc2.Rows[0], "id").Str)
	assert.Equal(t, "Alice", nodeField(t, doc2.Rows[0], "name").Str)
	assert.Equal(t, "true", nodeField(t, doc2.Rows[0], "active").Str)
}

func TestToJSONStripsLeadingPlusFromNumbers(t *testing.T) {
	text := "EntityName:Item\nschema:id:int¦delta:float\n+5¦+1.5"
	doc, err := linestruct.Decode(text, true)
	require.Nil(t, err)

	data, jerr := linestruct.ToJSON(doc)
	require.NoError(t, jerr)
	body := string(data)
	assert.Contains(t, body, `"id":5`)
	assert.Contains(t, body, `"delta":1.5`)
	assert.NotContains(t, body, `+5`)
	assert.NotContains(t, body, `+1.5`)
}

func TestFromJSONNullBecomesNullNode(t *testing.T) {
	jsonText := `{"entityName":"User","data":[{"id":1,"email":null}]}`
	doc, err := linestruct.FromJSON([]byte(jsonText))
	require.NoError(t, err)
	assert.True(t, nodeField(t, doc.Rows[0], "email").IsNull())
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
