package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"assessment.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestAssessmentSchema_Loadable(t *testing.T) {
	loader := gojsonschema.NewStringLoader(Assessment)
	_, err := gojsonschema.NewSchema(loader)
	require.NoError(t, err, "embedded assessment schema should compile")
}

func TestAssessmentSchema_EmbeddedMatchesFile(t *testing.T) {
	data, err := os.ReadFile("assessment.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), Assessment)
}
