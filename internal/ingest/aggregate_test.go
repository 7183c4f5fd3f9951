package ingest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/shared/types"
)

func TestAggregatorEmptyInput(t *testing.T) {
	agg := NewAggregator()
	summary, err := agg.Finalize()
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, types.ErrEmptyInput)
}

func TestAggregatorSummary(t *testing.T) {
	agg := NewAggregator()
	agg.Add(entity.NormalizedRecord{Cost: 100, Service: "EC2", Region: "us-east-1", Date: "2024-01-01", DiscountStatus: "Used"})
	agg.Add(entity.NormalizedRecord{Cost: 50, Service: "S3", Region: "us-west-2", Date: "2024-01-01", DiscountStatus: "None"})
	agg.Add(entity.NormalizedRecord{Cost: 25, Service: "S3", Region: "us-west-2", Date: "2024-01-02", DiscountStatus: "None"})

	summary, err := agg.Finalize()
	require.NoError(t, err)

	assert.Equal(t, 175.0, summary.TotalSpend)
	assert.Equal(t, 75.0, summary.LeakageCost)
	// round((175-75)/175*100) = 57
	assert.Equal(t, 57, summary.EfficiencyScore)
	assert.Equal(t, 3, summary.RecordCount)

	require.Len(t, summary.TimelineGraph, 2)
	assert.Equal(t, entity.TimelinePoint{Date: "2024-01-01", Cost: 150}, summary.TimelineGraph[0])
	assert.Equal(t, entity.TimelinePoint{Date: "2024-01-02", Cost: 25}, summary.TimelineGraph[1])

	require.Len(t, summary.ProductEarnings, 2)
	assert.Equal(t, entity.ServiceEarning{Name: "EC2", Value: 100}, summary.ProductEarnings[0])
	assert.Equal(t, entity.ServiceEarning{Name: "S3", Value: 75}, summary.ProductEarnings[1])

	require.Len(t, summary.LeakageItems, 2)
	for _, item := range summary.LeakageItems {
		assert.Equal(t, "Uncovered", item.Status)
		assert.Greater(t, item.Cost, 0.0001)
	}
}

func TestAggregatorSumInvariant(t *testing.T) {
	agg := NewAggregator()
	records := []entity.NormalizedRecord{
		{Cost: 10.5, Service: "EC2", Region: "us-east-1", Date: "2024-01-01"},
		{Cost: 0, Service: "Other", Region: "Global"},
		{Cost: 99.99, Service: "BigQuery", Region: "europe-west1", Date: "2024-01-03"},
		{Cost: 3.25, Service: "EC2", Region: "us-west-2"},
	}
	for _, rec := range records {
		agg.Add(rec)
	}

	summary, err := agg.Finalize()
	require.NoError(t, err)

	var serviceSum float64
	for _, s := range agg.services {
		serviceSum += s
	}
	var regionSum float64
	for _, r := range agg.regions {
		regionSum += r
	}
	assert.InDelta(t, summary.TotalSpend, round2(serviceSum), 0.001)
	assert.InDelta(t, summary.TotalSpend, round2(regionSum), 0.001)
	assert.LessOrEqual(t, summary.LeakageCost, summary.TotalSpend)

	// Linhas sem data ficam fora da timeline: a soma dela pode ser menor.
	var timelineSum float64
	for _, p := range summary.TimelineGraph {
		timelineSum += p.Cost
	}
	assert.Less(t, timelineSum, summary.TotalSpend)
}

func TestAggregatorBoundedBuffers(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < maxSampleRecords+200; i++ {
		agg.Add(entity.NormalizedRecord{
			Cost:         1,
			Service:      "EC2",
			Region:       "us-east-1",
			ResourceName: fmt.Sprintf("res-%d", i),
		})
	}

	summary, err := agg.Finalize()
	require.NoError(t, err)

	// Os limites valem só para as listas; os totais contam todas as linhas.
	assert.Len(t, summary.LeakageItems, maxLeakageItems)
	assert.Len(t, agg.Sample(), maxSampleRecords)
	assert.Equal(t, maxSampleRecords+200, agg.Rows())
	assert.Equal(t, float64(maxSampleRecords+200), summary.TotalSpend)
	assert.Equal(t, summary.TotalSpend, summary.LeakageCost)
	assert.Equal(t, 0, summary.EfficiencyScore)
}

func TestAggregatorTopServicesLimit(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 15; i++ {
		agg.Add(entity.NormalizedRecord{
			Cost:    float64(i + 1),
			Service: fmt.Sprintf("service-%d", i),
			Region:  "Global",
		})
	}

	summary, err := agg.Finalize()
	require.NoError(t, err)

	require.Len(t, summary.ProductEarnings, topServicesLimit)
	assert.Equal(t, "service-14", summary.ProductEarnings[0].Name)
	for i := 1; i < len(summary.ProductEarnings); i++ {
		assert.GreaterOrEqual(t, summary.ProductEarnings[i-1].Value, summary.ProductEarnings[i].Value)
	}
}

func TestAggregatorEfficiencyScoreBounds(t *testing.T) {
	t.Run("zero spend scores 100", func(t *testing.T) {
		agg := NewAggregator()
		agg.Add(entity.NormalizedRecord{Cost: 0, Service: "Other", Region: "Global"})
		summary, err := agg.Finalize()
		require.NoError(t, err)
		assert.Equal(t, 100, summary.EfficiencyScore)
	})

	t.Run("all spend optimized scores 100", func(t *testing.T) {
		agg := NewAggregator()
		agg.Add(entity.NormalizedRecord{Cost: 500, Service: "EC2", Region: "Global", DiscountStatus: "Reserved"})
		summary, err := agg.Finalize()
		require.NoError(t, err)
		assert.Equal(t, 100, summary.EfficiencyScore)
	})

	t.Run("all spend uncovered scores 0", func(t *testing.T) {
		agg := NewAggregator()
		agg.Add(entity.NormalizedRecord{Cost: 500, Service: "EC2", Region: "Global", DiscountStatus: "None"})
		summary, err := agg.Finalize()
		require.NoError(t, err)
		assert.Equal(t, 0, summary.EfficiencyScore)
	})
}

func TestLeakageName(t *testing.T) {
	tests := map[string]struct {
		rec      entity.NormalizedRecord
		expected string
	}{
		"resource name wins":            {entity.NormalizedRecord{ResourceName: "db-1", ResourceID: "i-123", Service: "RDS"}, "db-1"},
		"resource id next":              {entity.NormalizedRecord{ResourceID: "i-123", Service: "RDS"}, "i-123"},
		"service as last resort":        {entity.NormalizedRecord{Service: "RDS"}, "RDS"},
		"defaulted service placeholder": {entity.NormalizedRecord{Service: "Other"}, "Unknown Resource"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, leakageName(tt.rec))
		})
	}
}
