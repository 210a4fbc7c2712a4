package dto

import (
	"encoding/json"
	"testing"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBudgetRequest_ToModelDefaultsSpent(t *testing.T) {
	var req CreateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"month":3,"year":2024,"value":500,"email":"spoof@example.com"}`), &req))

	budget := req.ToModel()

	assert.Equal(t, "", budget.Email)
	assert.Equal(t, models.Period{Month: 3, Year: 2024}, budget.Period())
	assert.True(t, budget.Value.Equal(decimal.NewFromInt(500)))
	assert.True(t, budget.Spent.IsZero())
}

func TestUpdateBudgetRequest_ToPatchOnlyPresentFields(t *testing.T) {
	var req UpdateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"spent":"150"}`), &req))

	patch := req.ToPatch()

	assert.Equal(t, []string{models.FieldSpent}, patch.Fields())
	assert.False(t, patch.Has(models.FieldValue))
}

func TestUpdateBudgetRequest_EmptyBody(t *testing.T) {
	var req UpdateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	assert.True(t, req.ToPatch().IsEmpty())
}

func TestGenerateBudgetRequest_AcceptsBothShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bare string", body: `"verySecurePassword"`, want: "verySecurePassword"},
		{name: "object", body: `{"keyword":"verySecurePassword"}`, want: "verySecurePassword"},
		{name: "padded string", body: "  \"k\"\n", want: "k"},
		{name: "empty object", body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerateBudgetRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Keyword)
		})
	}
}

func TestGenerateBudgetRequest_RejectsOtherTypes(t *testing.T) {
	var req GenerateBudgetRequest
	assert.Error(t, json.Unmarshal([]byte(`42`), &req))
}

func TestDeletedBudgetMessage(t *testing.T) {
	assert.Equal(t, "Budget with month: 4 and year: 2023 was successfully deleted",
		DeletedBudgetMessage(models.Period{Month: 4, Year: 2023}))
}

func TestCreateBudgetRequest_MissingValueStaysNil(t *testing.T) {
	var req CreateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"month":3,"year":2024}`), &req))

	assert.Nil(t, req.Value)
}
