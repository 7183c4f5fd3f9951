package entity

// TimelinePoint is one day of aggregated spend on the dashboard timeline.
type TimelinePoint struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// ServiceEarning é uma fatia do breakdown por serviço (top-N do dashboard).
type ServiceEarning struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// LeakageItem is a single resource whose spend is not covered by any
// reservation, savings plan or commitment discount.
type LeakageItem struct {
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Region  string  `json:"region"`
	Cost    float64 `json:"cost"`
	Status  string  `json:"CommitmentDiscountStatus"`
}

// AnalysisSummary is the finalized, UI-ready aggregate for one billing export.
type AnalysisSummary struct {
	TotalSpend      float64          `json:"totalSpend"`
	LeakageCost     float64          `json:"leakageCost"`
	EfficiencyScore int              `json:"efficiencyScore"`
	TimelineGraph   []TimelinePoint  `json:"timelineGraph"`
	ProductEarnings []ServiceEarning `json:"productEarnings"`
	LeakageItems    []LeakageItem    `json:"leakageItems"`
	RecordCount     int              `json:"recordCount"`
}

// AnalysisResult combina o resumo agregado com os metadados de ingestão e a
// amostra de registros normalizados enviada ao frontend para preview.
type AnalysisResult struct {
	Summary       AnalysisSummary    `json:"summary"`
	Records       []NormalizedRecord `json:"records"`
	ColumnMapping ColumnMapping      `json:"columnMapping"`
	TotalRows     int                `json:"totalRows"`
	SampleSize    int                `json:"sampleSize"`
}
