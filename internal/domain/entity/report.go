package entity

// NamedCost representa um custo nomeado (serviço ou região) no relatório.
type NamedCost struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// OptimizationData carries the savings figures shown in the executive report.
type OptimizationData struct {
	TotalPotentialSavings float64 `json:"totalPotentialSavings"`
	HighConfidencePercent float64 `json:"highConfidencePercent"`
	UnderReviewPercent    float64 `json:"underReviewPercent"`
	IdleResources         int     `json:"idleResources"`
	RightSizing           int     `json:"rightSizing"`
	Commitments           int     `json:"commitments"`
}

// ReportRequest is the finished summary the dashboard sends back when the user
// asks for the executive PDF. The percentages are computed client-side from
// the preview sample; the backend only renders them.
type ReportRequest struct {
	Period            string           `json:"period"`
	TotalSpend        float64          `json:"totalSpend"`
	TopServices       []NamedCost      `json:"topServices"`
	TopRegions        []NamedCost      `json:"topRegions"`
	OptimizationData  OptimizationData `json:"optimizationData"`
	TopServicePercent float64          `json:"topServicePercent"`
	TaggedPercent     float64          `json:"taggedPercent"`
	ProdPercent       float64          `json:"prodPercent"`
}
