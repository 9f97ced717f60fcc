package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	require.Len(t, all, 20)

	seen := make(map[string]bool)
	for _, d := range all {
		assert.NotEmpty(t, d.Name)
		assert.False(t, seen[d.Name], "duplicate tool name %s", d.Name)
		seen[d.Name] = true

		assert.True(t, strings.HasPrefix(d.Path, "/"), "path of %s must start with /", d.Name)
		assert.NotEmpty(t, d.Description, "tool %s has no description", d.Name)

		keys := make(map[string]bool)
		for _, p := range d.Params {
			assert.False(t, keys[p.QueryKey()], "tool %s sends query key %s twice", d.Name, p.QueryKey())
			keys[p.QueryKey()] = true
			assert.False(t, p.Required && p.Default != "", "required param %s.%s must not have a default", d.Name, p.Name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name)
}

func TestLookup(t *testing.T) {
	d, err := Lookup("get_historical_stock_data")
	require.NoError(t, err)
	assert.Equal(t, "/historical_data", d.Path)
	assert.Equal(t, []string{"symbol", "from_date", "to_date"}, d.Required())

	d.Params[0].Name = "mutated"
	again, err := Lookup("get_historical_stock_data")
	require.NoError(t, err)
	assert.Equal(t, "symbol", again.Params[0].Name)

	_, err = Lookup("get_weather")
	assert.True(t, errors.Is(err, ErrUnknownTool))
}

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		args    map[string]any
		want    map[string]string
		wantErr error
	}{
		{
			name: "no params",
			tool: "get_ipo_data",
			args: nil,
			want: nil,
		},
		{
			name: "optional params unset are omitted",
			tool: "get_news_data",
			args: map[string]any{},
			want: nil,
		},
		{
			name: "optional empty string and null are omitted",
			tool: "get_news_data",
			args: map[string]any{"query": "", "symbol": nil},
			want: nil,
		},
		{
			name: "optional params are renamed",
			tool: "get_news_data",
			args: map[string]any{"query": "results"},
			want: map[string]string{"q": "results"},
		},
		{
			name: "required param",
			tool: "get_stock_details",
			args: map[string]any{"name": "Tata Steel"},
			want: map[string]string{"name": "Tata Steel"},
		},
		{
			name:    "required param missing",
			tool:    "get_stock_details",
			args:    map[string]any{},
			wantErr: ErrMissingArgument,
		},
		{
			name:    "required param null",
			tool:    "get_stock_details",
			args:    map[string]any{"name": nil},
			wantErr: ErrMissingArgument,
		},
		{
			name: "defaults are applied",
			tool: "get_historical_stock_data",
			args: map[string]any{"symbol": "INFY", "from_date": "2024-01-01", "to_date": "not-a-date"},
			want: map[string]string{"symbol": "INFY", "from": "2024-01-01", "to": "not-a-date", "interval": "1d"},
		},
		{
			name: "defaults are overridden",
			tool: "get_financial_statement",
			args: map[string]any{"stock_name": "TCS", "stats": "quarter_results", "statement_type": "balance", "period": "quarterly"},
			want: map[string]string{"stock_name": "TCS", "stats": "quarter_results", "type": "balance", "period": "quarterly"},
		},
		{
			name: "non-string values are stringified",
			tool: "get_mutual_fund_details",
			args: map[string]any{"scheme_code": float64(119551)},
			want: map[string]string{"scheme_code": "119551"},
		},
		{
			name: "large numbers are not written in exponent form",
			tool: "get_mutual_fund_details",
			args: map[string]any{"scheme_code": float64(1000000)},
			want: map[string]string{"scheme_code": "1000000"},
		},
		{
			name: "unknown arguments are ignored",
			tool: "get_trending_stocks",
			args: map[string]any{"extra": "x"},
			want: nil,
		},
		{
			name: "default with optional sibling",
			tool: "fetch_52_week_high_low_data",
			args: map[string]any{"exchange": "NSE"},
			want: map[string]string{"type": "high", "exchange": "NSE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.tool)
			require.NoError(t, err)

			got, err := d.BuildParams(tt.args)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"INFY", "INFY"},
		{float64(119551), "119551"},
		{float64(1000000), "1000000"},
		{float64(1e21), "1000000000000000000000"},
		{1.5, "1.5"},
		{float32(2.25), "2.25"},
		{42, "42"},
		{true, "true"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stringify(tt.in), "stringify(%#v)", tt.in)
	}
}
