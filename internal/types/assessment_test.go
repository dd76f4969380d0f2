package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr bool
	}{
		{
			name: "valid request with all fields",
			req: AnalyzeRequest{
				Message:     "Hi, I need a logo designed for my startup. Budget is $2000.",
				Industry:    "designer",
				Experience:  "beginner",
				ProjectType: "logo design",
			},
			wantErr: false,
		},
		{
			name:    "valid request with message only",
			req:     AnalyzeRequest{Message: "We need a new marketing website built."},
			wantErr: false,
		},
		{
			name:    "missing message",
			req:     AnalyzeRequest{Industry: "developer"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeRequest_TrimmedMessage(t *testing.T) {
	req := AnalyzeRequest{Message: "  hello there  \n"}
	assert.Equal(t, "hello there", req.TrimmedMessage())
}

func TestAssessment_JSONFieldNames(t *testing.T) {
	a := Assessment{
		OverallScore: 7,
		RedFlags: []RedFlag{
			{Type: "Scope Creep", Severity: SeverityMedium, Evidence: "and a few other small things", Explanation: "undefined extras"},
		},
		GreenFlags: []string{"Clear budget"},
		Advice:     "Pin down the extras before quoting.",
		Verdict:    "Proceed with Caution",
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "overallScore")
	assert.Contains(t, raw, "redFlags")
	assert.Contains(t, raw, "greenFlags")

	flags, ok := raw["redFlags"].([]any)
	require.True(t, ok)
	require.Len(t, flags, 1)
	flag := flags[0].(map[string]any)
	assert.Equal(t, "Medium", flag["severity"])
}
