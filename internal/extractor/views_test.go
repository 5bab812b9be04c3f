package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateViewName(t *testing.T) {
	tests := []struct {
		name    string
		view    string
		wantErr bool
	}{
		{name: "schema qualified", view: "gold.dim_customers"},
		{name: "bare name", view: "dim_customers"},
		{name: "underscore prefix", view: "_staging"},
		{name: "digits after first char", view: "gold.fact_sales_2024"},
		{name: "empty", view: "", wantErr: true},
		{name: "two dots", view: "warehouse.gold.dim_customers", wantErr: true},
		{name: "leading digit", view: "1gold.dim_customers", wantErr: true},
		{name: "embedded space", view: "gold.dim customers", wantErr: true},
		{name: "semicolon injection", view: "gold.dim_customers; DROP TABLE gold.fact_sales", wantErr: true},
		{name: "quote injection", view: "gold.dim_customers'--", wantErr: true},
		{name: "trailing dot", view: "gold.", wantErr: true},
		{name: "hyphen", view: "gold.dim-customers", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewName(tt.view)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ReasonInvalidIdentifier, GetReason(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAllowlist(t *testing.T) {
	list := NewAllowlist([]string{"gold.dim_customers", "gold.fact_sales"})

	assert.True(t, list.Contains("gold.dim_customers"))
	assert.True(t, list.Contains("gold.fact_sales"))
	assert.False(t, list.Contains("gold.dim_products"))
	assert.False(t, list.Contains("GOLD.DIM_CUSTOMERS"), "matching is case sensitive")

	empty := NewAllowlist(nil)
	assert.False(t, empty.Contains("gold.dim_customers"))
}

func TestExtractError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewExtractError(ReasonQuery, "gold.fact_sales", cause)

	assert.Equal(t, "[query] gold.fact_sales: connection reset", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Equal(t, ReasonQuery, GetReason(err))
}

func TestGetReason_UnknownError(t *testing.T) {
	assert.Equal(t, Reason(""), GetReason(errors.New("plain")))
	assert.Equal(t, Reason(""), GetReason(nil))
}
