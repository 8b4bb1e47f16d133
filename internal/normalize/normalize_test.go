package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload_ResultObject(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{
			"result": map[string]any{"overall_readiness_score": float64(68)},
		},
	}

	payload := ExtractPayload(envelope)
	require.NotNil(t, payload)
	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(68), obj["overall_readiness_score"])
}

func TestExtractPayload_ResultStringEncoded(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{
			"result": `{"overall_readiness_score": 68, "employee_name": "Alex Morgan"}`,
		},
	}

	payload := ExtractPayload(envelope)
	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(68), obj["overall_readiness_score"])
	assert.Equal(t, "Alex Morgan", obj["employee_name"])
}

func TestExtractPayload_FencedResult(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{
			"result": "```json\n{\"overall_readiness_score\": 42}\n```",
		},
	}

	payload := ExtractPayload(envelope)
	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), obj["overall_readiness_score"])
}

func TestExtractPayload_FallsBackToResponse(t *testing.T) {
	// No result key: the payload sits directly under response.
	envelope := map[string]any{
		"response": map[string]any{"overall_readiness_score": float64(50)},
	}

	payload := ExtractPayload(envelope)
	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(50), obj["overall_readiness_score"])
}

func TestExtractPayload_EmptyResultFallsBack(t *testing.T) {
	// An empty result object is treated as absent.
	envelope := map[string]any{
		"response": map[string]any{
			"result": map[string]any{},
		},
	}

	payload := ExtractPayload(envelope)
	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	// Falls back to the response object itself, which still has the
	// empty result key.
	assert.Contains(t, obj, "result")
}

func TestExtractPayload_UndecodableStringKeptRaw(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{"result": "not json at all"},
	}

	payload := ExtractPayload(envelope)
	assert.Equal(t, "not json at all", payload)
}

func TestExtractPayload_NoPayload(t *testing.T) {
	assert.Nil(t, ExtractPayload(nil))
	assert.Nil(t, ExtractPayload("plain string"))
	assert.Nil(t, ExtractPayload(map[string]any{}))
	assert.Nil(t, ExtractPayload(map[string]any{"response": nil}))
	assert.Nil(t, ExtractPayload(map[string]any{"response": "   "}))
}

func TestAssessment_FullDecode(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{
			"result": `{
				"overall_readiness_score": 68,
				"employee_name": "Alex Morgan",
				"skill_radar_data": [
					{"skill_name": "System Design", "current_score": 45, "required_score": 85}
				],
				"gap_heatmap": [
					{"skill_name": "System Design", "gap": 40, "classification": "Critical"}
				]
			}`,
		},
	}

	result, err := Assessment(envelope)
	require.NoError(t, err)
	assert.Equal(t, 68, result.ReadinessScore)
	assert.Equal(t, "Alex Morgan", result.EmployeeName)
	require.Len(t, result.SkillRadar, 1)
	assert.Equal(t, 45, result.SkillRadar[0].CurrentScore)
	require.Len(t, result.GapHeatmap, 1)
	assert.Equal(t, "Critical", result.GapHeatmap[0].Classification)
}

func TestAssessment_MalformedFieldDegrades(t *testing.T) {
	// A string where a number belongs must not fail the whole decode.
	envelope := map[string]any{
		"response": map[string]any{
			"result": map[string]any{
				"overall_readiness_score": "not-a-number",
				"employee_name":           "Alex Morgan",
			},
		},
	}

	result, err := Assessment(envelope)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ReadinessScore)
}

func TestAssessment_NoPayloadIsParseError(t *testing.T) {
	_, err := Assessment(map[string]any{})
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestWorkforce_Decode(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{
			"result": map[string]any{
				"summary_cards": map[string]any{
					"total_employees_assessed": float64(847),
				},
			},
		},
	}

	report, err := Workforce(envelope)
	require.NoError(t, err)
	assert.Equal(t, 847, report.SummaryCards.TotalEmployeesAssessed)
}

func TestForecast_Decode(t *testing.T) {
	envelope := map[string]any{
		"response": map[string]any{
			"result": map[string]any{
				"scenario":                "Expansion into AI products",
				"forecast_horizon_months": float64(18),
			},
		},
	}

	forecast, err := Forecast(envelope)
	require.NoError(t, err)
	assert.Equal(t, "Expansion into AI products", forecast.Scenario)
	assert.Equal(t, 18, forecast.HorizonMonths)
}

func TestParseError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &ParseError{Message: "boom", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
