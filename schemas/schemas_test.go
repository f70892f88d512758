package schemas

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/vtop-agent/internal/schemas"
	"github.com/arvind/vtop-agent/internal/transcript"
)

const documentSchemaFile = "parsed_document.schema.json"

func TestSchemaFile_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(documentSchemaFile)
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestSchemaFile_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile(documentSchemaFile)
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	err = json.Unmarshal(data, &schemaObj)
	require.NoError(t, err)

	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]
	assert.True(t, hasType && hasSchema && hasProps,
		"schema should declare type, $schema and properties")

	required, ok := schemaObj["required"].([]interface{})
	require.True(t, ok, "schema should list required keys")
	assert.Contains(t, required, "reg_no")
	assert.Contains(t, required, "marks")
	assert.Contains(t, required, "generated_at")
}

func TestParserOutput_SatisfiesSchema(t *testing.T) {
	// A freshly parsed document must pass the emitted-document contract,
	// including one where most sections are absent and defaults apply.
	transcripts := []string{
		`=== PROFILE INFORMATION ===
Registration Number │ 23BCE1234
Name │ ARVIND KUMAR

=== MARKS SEMESTER 5 ===
[1;34mArtificial Intelligence[0m
Quiz 1 │ 10 │ 10 │ Completed │ 7 │ 7
[32m20.5[0m/[32m60[0m

=== ATTENDANCE SEMESTER 5 ===
1 │ Artificial Intelligence │ Theory │ DR SMITH │ 34/36 │ 94%`,
		"",
	}

	for _, raw := range transcripts {
		p := &transcript.Parser{Now: func() time.Time {
			return time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
		}}
		doc, err := p.Parse(raw)
		require.NoError(t, err)

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		err = schemas.ValidateBytes(documentSchemaFile, data)
		assert.NoError(t, err)
	}
}
