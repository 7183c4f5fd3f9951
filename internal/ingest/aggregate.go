package ingest

import (
	"math"
	"sort"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/shared/types"
)

const (
	// maxLeakageItems caps the uncovered-resource list sent to the UI. Linhas
	// além do limite ainda somam no custo de leakage, apenas não viram itens.
	maxLeakageItems = 100

	// maxSampleRecords caps the normalized-record preview sample. This is a
	// deliberate sampling decision, not a truncation bug: the dashboard only
	// needs the first rows to render its data grid.
	maxSampleRecords = 5000

	// topServicesLimit is the size of the service breakdown on the dashboard.
	topServicesLimit = 10
)

// Aggregator mantém os agregados de uma única ingestão: total gasto, séries
// por dia/serviço/região, leakage e a amostra de preview. One instance per
// upload, fed one record at a time in file order; it is single-writer and must
// not be shared between concurrent uploads.
type Aggregator struct {
	totalSpend  float64
	leakageCost float64
	rowCount    int

	timeline map[string]float64
	services map[string]float64
	regions  map[string]float64

	leakageItems []entity.LeakageItem
	sample       []entity.NormalizedRecord
}

// NewAggregator creates an empty aggregation state for one upload.
func NewAggregator() *Aggregator {
	return &Aggregator{
		timeline: make(map[string]float64),
		services: make(map[string]float64),
		regions:  make(map[string]float64),
	}
}

// Add folds one normalized record into the running aggregate. It never fails:
// every bucket lookup defaults to zero before adding.
func (a *Aggregator) Add(rec entity.NormalizedRecord) {
	a.rowCount++
	a.totalSpend += rec.Cost

	if leakageEligible(rec) {
		a.leakageCost += rec.Cost
		if len(a.leakageItems) < maxLeakageItems {
			a.leakageItems = append(a.leakageItems, entity.LeakageItem{
				Name:    leakageName(rec),
				Service: rec.Service,
				Region:  rec.Region,
				Cost:    rec.Cost,
				Status:  "Uncovered",
			})
		}
	}

	// Linhas sem data válida ficam fora da timeline mas continuam contando no
	// total e nos breakdowns; a soma da timeline pode ser menor que o total.
	if rec.Date != "" {
		a.timeline[rec.Date] += rec.Cost
	}

	a.services[rec.Service] += rec.Cost
	a.regions[rec.Region] += rec.Cost

	if len(a.sample) < maxSampleRecords {
		a.sample = append(a.sample, rec)
	}
}

// leakageName resolves the display name of an uncovered resource: resource
// name, then resource ID, then the service, then a generic placeholder. The
// defaulted service bucket does not count as a name.
func leakageName(rec entity.NormalizedRecord) string {
	switch {
	case rec.ResourceName != "":
		return rec.ResourceName
	case rec.ResourceID != "":
		return rec.ResourceID
	case rec.Service != defaultService:
		return rec.Service
	default:
		return "Unknown Resource"
	}
}

// Rows returns how many records have been fed into the aggregator.
func (a *Aggregator) Rows() int { return a.rowCount }

// Sample returns the bounded preview of normalized records, in file order.
func (a *Aggregator) Sample() []entity.NormalizedRecord { return a.sample }

// Finalize converts the running aggregate into the sorted, UI-ready summary.
// It fails with types.ErrEmptyInput when no rows were parsed; nenhum resultado
// parcial é emitido nesse caso.
func (a *Aggregator) Finalize() (*entity.AnalysisSummary, error) {
	if a.rowCount == 0 {
		return nil, types.ErrEmptyInput
	}

	timeline := make([]entity.TimelinePoint, 0, len(a.timeline))
	for date, cost := range a.timeline {
		timeline = append(timeline, entity.TimelinePoint{Date: date, Cost: round2(cost)})
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date < timeline[j].Date })

	earnings := make([]entity.ServiceEarning, 0, len(a.services))
	for name, value := range a.services {
		earnings = append(earnings, entity.ServiceEarning{Name: name, Value: round2(value)})
	}
	sort.Slice(earnings, func(i, j int) bool { return earnings[i].Value > earnings[j].Value })
	if len(earnings) > topServicesLimit {
		earnings = earnings[:topServicesLimit]
	}

	// Sem gasto nenhum, não há do que ser ineficiente: score 100 por convenção.
	score := 100
	if a.totalSpend > 0 {
		score = int(math.Round(((a.totalSpend - a.leakageCost) / a.totalSpend) * 100))
	}

	leakageItems := a.leakageItems
	if leakageItems == nil {
		leakageItems = []entity.LeakageItem{}
	}

	return &entity.AnalysisSummary{
		TotalSpend:      round2(a.totalSpend),
		LeakageCost:     round2(a.leakageCost),
		EfficiencyScore: score,
		TimelineGraph:   timeline,
		ProductEarnings: earnings,
		LeakageItems:    leakageItems,
		RecordCount:     a.rowCount,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
