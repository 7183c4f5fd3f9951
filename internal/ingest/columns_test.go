package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectColumns(t *testing.T) {
	tests := map[string]struct {
		headers  []string
		expected map[string]string
	}{
		"FOCUS-style export": {
			headers: []string{"BilledCost", "ServiceName", "RegionName", "ChargePeriodStart", "CommitmentDiscountStatus"},
			expected: map[string]string{
				"BilledCost":               "BilledCost",
				"ServiceName":              "ServiceName",
				"RegionName":               "RegionName",
				"BillingPeriodStart":       "ChargePeriodStart",
				"CommitmentDiscountStatus": "CommitmentDiscountStatus",
			},
		},
		"AWS CUR columns": {
			headers: []string{"lineItem/UnblendedCost", "lineItem/ProductCode", "product/region", "lineItem/UsageStartDate", "lineItem/LineItemType"},
			expected: map[string]string{
				"Cost":                     "lineItem/UnblendedCost",
				"ServiceName":              "lineItem/ProductCode",
				"Region":                   "product/region",
				"UsageStartDate":           "lineItem/UsageStartDate",
				"CommitmentDiscountStatus": "lineItem/LineItemType",
			},
		},
		"Azure columns": {
			headers: []string{"CostInBillingCurrency", "MeterCategory", "Location", "UsageDateTime", "PricingModel"},
			expected: map[string]string{
				"Cost":                     "CostInBillingCurrency",
				"Product":                  "MeterCategory",
				"RegionName":               "Location",
				"UsageStartDate":           "UsageDateTime",
				"CommitmentDiscountStatus": "PricingModel",
			},
		},
		"case-insensitive matching keeps the file's own header": {
			headers: []string{"BILLEDCOST", "servicename"},
			expected: map[string]string{
				"BilledCost":  "BILLEDCOST",
				"ServiceName": "servicename",
			},
		},
		"BOM and whitespace are stripped before matching": {
			headers: []string{"\ufeffServiceName", "  Cost  "},
			expected: map[string]string{
				"ServiceName": "ServiceName",
				"Cost":        "Cost",
			},
		},
		"first synonym in priority order wins": {
			headers: []string{"UnblendedCost", "Cost"},
			expected: map[string]string{
				"Cost": "Cost",
			},
		},
		"unrecognizable headers produce an empty mapping": {
			headers:  []string{"foo", "bar", "baz"},
			expected: map[string]string{},
		},
		"empty header row": {
			headers:  nil,
			expected: map[string]string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mapping := DetectColumns(tt.headers)
			require.Len(t, mapping, len(tt.expected))
			for field, header := range tt.expected {
				assert.Equal(t, header, mapping[field], "field %s", field)
			}
		})
	}
}

func TestDetectColumnsIsIdempotent(t *testing.T) {
	headers := []string{"BilledCost", "ServiceName", "RegionName", "ChargePeriodStart"}
	first := DetectColumns(headers)
	second := DetectColumns(headers)
	assert.Equal(t, first, second)
}
