package linestruct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linestruct/linestruct"
)

func TestCompatibleWithPrimitiveExactMatch(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:id:int¦name:string")
	want, _ := linestruct.ParseExternalSchema("id:int¦name:string")
	assert.Nil(t, linestruct.CompatibleWith(have, want))
}

func TestCompatibleWithPrimitiveMismatch(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:id:string")
	want, _ := linestruct.ParseExternalSchema("id:int")
	err := linestruct.CompatibleWith(have, want)
	require.NotNil(t, err)
	assert.Equal(t, linestruct.KindExternalSchemaMismatch, err.Kind)
}

func TestCompatibleWithPrimitiveAliases(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:id:int¦name:string¦price:float¦active:bool")
	want, _ := linestruct.ParseExternalSchema("id:integer¦name:str¦price:double¦active:boolean")
	assert.Nil(t, linestruct.CompatibleWith(have, want))
}

func TestCompatibleWithEnumSupersetDirection(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:status:{pending|shipped}")
	wantWide, _ := linestruct.ParseExternalSchema("status:{pending|shipped|delivered}")
	assert.Nil(t, linestruct.CompatibleWith(have, wantWide), "external superset of document alternatives should be compatible")

	wantNarrow, _ := linestruct.ParseExternalSchema("status:{pending}")
	err := linestruct.CompatibleWith(have, wantNarrow)
	require.NotNil(t, err, "document alternative missing from external set must be rejected")
	assert.Equal(t, linestruct.KindExternalSchemaMismatch, err.Kind)
}

func TestCompatibleWithArrayRecursion(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:tags:«string»")
	want, _ := linestruct.ParseExternalSchema("tags:«int»")
	err := linestruct.CompatibleWith(have, want)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "[]")
}

func TestCompatibleWithObjectRequiredFieldMissing(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:id:int")
	want, _ := linestruct.ParseExternalSchema("id:int¦name:string")
	err := linestruct.CompatibleWith(have, want)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestCompatibleWithObjectOptionalVsRequired(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:id:int¦name:<string>?")
	want, _ := linestruct.ParseExternalSchema("id:int¦name:string")
	err := linestruct.CompatibleWith(have, want)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestCompatibleWithObjectExternalOptionalFieldAbsent(t *testing.T) {
	have, _ := linestruct.ParseSchema("schema:id:int")
	want, _ := linestruct.ParseExternalSchema("id:int¦name:<string>?")
	assert.Nil(t, linestruct.CompatibleWith(have, want))
}

func TestValidateAgainstFullDocument(t *testing.T) {
	text := "EntityName:Person\nschema:id:int¦name:string\n1¦Alice"
	external, serr := linestruct.ParseExternalSchema("id:int¦name:string")
	require.Nil(t, serr)
	assert.Nil(t, linestruct.ValidateAgainst(external, text))
}

func TestValidateAgainstFailingDocument(t *testing.T) {
	text := "EntityName:Person\nschema:id:int¦name:string\n1¦Alice"
	external, serr := linestruct.ParseExternalSchema("id:int¦name:string¦age:int")
	require.Nil(t, serr)
	msg := linestruct.ValidateAgainst(external, text)
	require.NotNil(t, msg)
	assert.Contains(t, *msg, "age")
}
