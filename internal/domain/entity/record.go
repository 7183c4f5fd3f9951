package entity

// RawRow é uma linha do CSV exatamente como foi lida: cabeçalho -> valor.
// Vive apenas até a normalização.
type RawRow map[string]string

// ColumnMapping maps a canonical cost-schema field name to the actual column
// header found in the uploaded file. Fields that could not be detected are
// simply absent; callers default at use time.
type ColumnMapping map[string]string

// NormalizedRecord holds one row's values under canonical field names.
// Cost is always present (0 on parse failure) and never negative; Service and
// Region carry best-effort defaults so the aggregation buckets never see an
// empty key.
type NormalizedRecord struct {
	Cost           float64 `json:"cost"`
	Service        string  `json:"service"`
	Region         string  `json:"region"`
	Date           string  `json:"date,omitempty"`
	ResourceName   string  `json:"resourceName,omitempty"`
	ResourceID     string  `json:"resourceId,omitempty"`
	DiscountStatus string  `json:"commitmentDiscountStatus,omitempty"`
	Tags           string  `json:"tags,omitempty"`
}
