package promo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 4)

	byCode := make(map[string]int)
	for i, rec := range catalog {
		byCode[rec.Code] = i
		assert.Positive(t, rec.MaxUses)
		assert.Zero(t, rec.UsesCount, "catalog codes start unused")
	}

	assert.True(t, catalog[byCode["BETA100"]].Active)
	assert.Equal(t, 100, catalog[byCode["BETA100"]].DiscountPercent)
	assert.Equal(t, 250, catalog[byCode["BETA100"]].MaxUses)
	assert.False(t, catalog[byCode["LAUNCH25"]].Active)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.json")
	content := `[
		{"code": "SPRING10", "max_uses": 20, "discount_percent": 10, "active": true},
		{"code": "VIP100", "uses_count": 5, "max_uses": 10, "discount_percent": 100, "active": true}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "SPRING10", catalog[0].Code)
	assert.Equal(t, 5, catalog[1].UsesCount)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", "nope"},
		{"missing code", `[{"max_uses": 5, "discount_percent": 10, "active": true}]`},
		{"zero max_uses", `[{"code": "X", "max_uses": 0, "discount_percent": 10, "active": true}]`},
		{"discount over 100", `[{"code": "X", "max_uses": 5, "discount_percent": 150, "active": true}]`},
		{"negative uses", `[{"code": "X", "uses_count": -1, "max_uses": 5, "discount_percent": 10, "active": true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "codes.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadCatalog(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
