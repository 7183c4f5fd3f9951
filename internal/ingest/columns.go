// Package ingest implements the streaming CSV ingestion pipeline: column
// detection over provider-specific schema variants, per-row normalization and
// the single-pass cost aggregation that feeds the dashboard.
package ingest

import (
	"strings"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
)

// fieldSynonyms lists, in priority order, the column headers accepted for one
// canonical field. A mesma tabela cobre as variações de nomes da AWS (CUR),
// Azure e GCP, além do esquema FOCUS.
type fieldSynonyms struct {
	Field   string
	Headers []string
}

// columnSynonyms is the detection policy: data, not conditionals. The first
// synonym found in the header row wins for its canonical field.
var columnSynonyms = []fieldSynonyms{
	{"BilledCost", []string{"BilledCost", "billed_cost"}},
	{"Cost", []string{"Cost", "cost", "UnblendedCost", "lineItem/UnblendedCost", "CostInBillingCurrency", "PreTaxCost", "CostInUSD"}},
	{"ServiceName", []string{"ServiceName", "service_name", "Service", "service", "lineItem/ProductCode", "ServiceCategory"}},
	{"Product", []string{"Product", "product", "ProductName", "product/ProductName", "MeterCategory", "service.description"}},
	{"RegionName", []string{"RegionName", "region_name", "Location", "location"}},
	{"Region", []string{"Region", "region", "product/region"}},
	{"BillingPeriodStart", []string{"BillingPeriodStart", "billing_period_start", "ChargePeriodStart", "BillingPeriodStartDate"}},
	{"UsageStartDate", []string{"UsageStartDate", "usage_start_date", "lineItem/UsageStartDate", "UsageDateTime", "usage_start_time"}},
	{"Date", []string{"Date", "date", "Day", "UsageDate"}},
	{"ResourceName", []string{"ResourceName", "resource_name"}},
	{"ResourceId", []string{"ResourceId", "resource_id", "lineItem/ResourceId", "InstanceId"}},
	{"CommitmentDiscountStatus", []string{"CommitmentDiscountStatus", "commitment_discount_status", "lineItem/LineItemType", "PricingModel", "PurchaseOption"}},
	{"Tags", []string{"Tags", "tags", "resourceTags", "TagsJson", "labels"}},
}

// cleanHeader trims whitespace and a leading byte-order mark, which often
// corrupts the first column name of Windows-generated exports.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// DetectColumns inspects the header row and maps each canonical field to the
// actual column present in the file. Headers are matched case-insensitively.
// Um cabeçalho vazio ou irreconhecível produz um mapeamento vazio; não é um
// erro, apenas significa que cada linha cairá nos valores padrão.
func DetectColumns(headers []string) entity.ColumnMapping {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = cleanHeader(h)
	}

	mapping := make(entity.ColumnMapping)
	for _, fs := range columnSynonyms {
		for _, synonym := range fs.Headers {
			found := ""
			for _, h := range cleaned {
				if strings.EqualFold(h, synonym) {
					found = h
					break
				}
			}
			if found != "" {
				mapping[fs.Field] = found
				break
			}
		}
	}
	return mapping
}
