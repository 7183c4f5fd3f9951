package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
)

const (
	// defaultService bucket for rows without a recognizable service column.
	defaultService = "Other"
	// defaultRegion bucket for rows without a recognizable region column.
	defaultRegion = "Global"

	// costEpsilon exclui linhas de custo zero ou quase zero da contagem de
	// leakage, para que ruído de rateio não infle o relatório.
	costEpsilon = 0.0001
)

var (
	costCleaner = strings.NewReplacer("$", "", ",", "")
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

	// optimizedMarkers are the substrings of a commitment-discount status that
	// mark a row as covered by a reservation, savings plan or commitment.
	optimizedMarkers = []string{"used", "covered", "reserved", "savings"}
)

// parseCostOrZero coerces a raw cost cell into a non-negative float. Currency
// symbols and thousands separators are stripped first; anything still
// unparseable degrades to 0, and credit rows (negative amounts) are clamped
// to 0 so downstream percentages stay in range. Nunca retorna erro.
func parseCostOrZero(raw string) float64 {
	cleaned := strings.TrimSpace(costCleaner.Replace(raw))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// truncateDate reduces a timestamp-ish cell to its YYYY-MM-DD prefix by
// splitting on the first space and then on "T". Returns "" when the result
// does not look like a calendar date; such rows stay out of the timeline.
func truncateDate(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	return datePattern.FindString(s)
}

// isOptimized reports whether a discount status marks the row as covered.
func isOptimized(status string) bool {
	lower := strings.ToLower(status)
	for _, marker := range optimizedMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// firstNonEmpty devolve o primeiro valor não vazio, na ordem de prioridade.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// NormalizeRow converts one raw CSV row into a NormalizedRecord using the
// detected column mapping. Every field-level parse failure degrades to a
// default value; normalization never fails for a structurally valid row.
func NormalizeRow(raw entity.RawRow, mapping entity.ColumnMapping) entity.NormalizedRecord {
	get := func(field string) string {
		header, ok := mapping[field]
		if !ok {
			return ""
		}
		return strings.TrimSpace(raw[header])
	}

	rec := entity.NormalizedRecord{
		Cost:           parseCostOrZero(firstNonEmpty(get("BilledCost"), get("Cost"))),
		Service:        firstNonEmpty(get("ServiceName"), get("Product"), defaultService),
		Region:         firstNonEmpty(get("RegionName"), get("Region"), defaultRegion),
		Date:           truncateDate(firstNonEmpty(get("BillingPeriodStart"), get("UsageStartDate"), get("Date"))),
		ResourceName:   get("ResourceName"),
		ResourceID:     get("ResourceId"),
		DiscountStatus: get("CommitmentDiscountStatus"),
		Tags:           get("Tags"),
	}
	return rec
}

// leakageEligible reports whether a record counts as uncovered spend: not
// optimized, and costing more than the noise epsilon.
func leakageEligible(rec entity.NormalizedRecord) bool {
	return !isOptimized(rec.DiscountStatus) && rec.Cost > costEpsilon
}
