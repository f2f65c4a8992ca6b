package linestruct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linestruct/linestruct"
)

func decodeRows(t *testing.T, text string) []*linestruct.Node {
	t.Helper()
	doc, err := linestruct.Decode(text, true)
	require.Nil(t, err)
	return doc.Rows
}

func TestInferSchemaFieldOrderAndOptionality(t *testing.T) {
	rows := decodeRows(t, "EntityName:User\n"+
		"schema:id:int¦name:string¦email:<string>?\n"+
		"1¦Alice¦alice@example.com\n"+
		"2¦Bob¦")

	schema := linestruct.InferSchema(rows)
	require.Equal(t, 3, schema.FieldCount())
	assert.Equal(t, "id", schema.Fields[0].Name)
	assert.Equal(t, "name", schema.Fields[1].Name)
	assert.Equal(t, "email", schema.Fields[2].Name)
	assert.False(t, schema.FieldByName("id").Optional)
	assert.True(t, schema.FieldByName("email").Optional)
}

func TestInferSchemaAppendsLaterFields(t *testing.T) {
	first, serr := linestruct.ParseSchema("schema:id:int")
	require.Nil(t, serr)
	later, serr := linestruct.ParseSchema("schema:id:int¦a:string¦b:string")
	require.Nil(t, serr)
	rows := []*linestruct.Node{
		mustRow(t, first, "1"),
		mustRow(t, later, "2¦x¦y"),
	}
	inferred := linestruct.InferSchema(rows)
	names := make([]string, inferred.FieldCount())
	for i, f := range inferred.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"id", "a", "b"}, names)
}

func mustRow(t *testing.T, schema *linestruct.Type, line string) *linestruct.Node {
	t.Helper()
	row, err := linestruct.DecodeRow(schema, line, true)
	require.Nil(t, err)
	return row
}

func TestInferSchemaTypesFromFirstSample(t *testing.T) {
	rows := decodeRows(t, "EntityName:Item\n"+
		"schema:id:int¦price:float¦active:bool¦name:string\n"+
		"1¦9.99¦true¦Widget")

	schema := linestruct.InferSchema(rows)
	assert.Equal(t, linestruct.KindInt, schema.FieldByName("id").Type.Kind)
	assert.Equal(t, linestruct.KindFloat, schema.FieldByName("price").Type.Kind)
	assert.Equal(t, linestruct.KindBool, schema.FieldByName("active").Type.Kind)
	assert.Equal(t, linestruct.KindString, schema.FieldByName("name").Type.Kind)
}

func TestInferSchemaNestedObjectFieldsRequiredWhenSamplePresent(t *testing.T) {
	rows := decodeRows(t, "EntityName:User\n"+
		"schema:id:int¦profile:<‹bio:string¦age:int›>?\n"+
		"1¦‹hiker¦30›")

	schema := linestruct.InferSchema(rows)
	profile := schema.FieldByName("profile").Type
	require.Equal(t, linestruct.KindObject, profile.Kind)
	for _, f := range profile.Fields {
		assert.False(t, f.Optional)
	}
}

func TestInferSchemaNestedObjectFieldOptionalWhenSampleNull(t *testing.T) {
	rows := decodeRows(t, "EntityName:User\n"+
		"schema:id:int¦profile:<‹bio:<string>?¦age:int›>?\n"+
		"1¦‹¦30›")

	schema := linestruct.InferSchema(rows)
	profile := schema.FieldByName("profile").Type
	require.Equal(t, linestruct.KindObject, profile.Kind)
	assert.True(t, profile.FieldByName("bio").Optional,
		"nested field observed null in the sample row must be inferred optional")
	assert.False(t, profile.FieldByName("age").Optional)
}

func TestInferSchemaArrayElementTypeFromFirstNonNullElement(t *testing.T) {
	rows := decodeRows(t, "EntityName:Order\n"+
		"schema:id:int¦tags:«string»\n"+
		"1¦«a¦b¦c»")

	schema := linestruct.InferSchema(rows)
	tags := schema.FieldByName("tags").Type
	require.Equal(t, linestruct.KindArray, tags.Kind)
	assert.Equal(t, linestruct.KindString, tags.Elem.Kind)
}

func TestInferSchemaArrayElementTypeSkipsEmptyFirstArray(t *testing.T) {
	rows := decodeRows(t, "EntityName:Order\n"+
		"schema:id:int¦tags:«int»\n"+
		"1¦«»\n"+
		"2¦«1¦2»")

	schema := linestruct.InferSchema(rows)
	tags := schema.FieldByName("tags").Type
	require.Equal(t, linestruct.KindArray, tags.Kind)
	assert.Equal(t, linestruct.KindInt, tags.Elem.Kind,
		"element type must come from the first non-empty array across rows, not fall back to string because the first row's array was empty")
}
