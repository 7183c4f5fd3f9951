package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
)

func sampleResult() *entity.AnalysisResult {
	return &entity.AnalysisResult{
		Summary: entity.AnalysisSummary{
			TotalSpend:      150,
			LeakageCost:     50,
			EfficiencyScore: 67,
			TimelineGraph:   []entity.TimelinePoint{{Date: "2024-01-01", Cost: 150}},
			ProductEarnings: []entity.ServiceEarning{{Name: "EC2", Value: 100}, {Name: "S3", Value: 50}},
			LeakageItems:    []entity.LeakageItem{{Name: "bucket-1", Service: "S3", Region: "us-west-2", Cost: 50, Status: "Uncovered"}},
			RecordCount:     2,
		},
		Records: []entity.NormalizedRecord{
			{Cost: 100, Service: "EC2", Region: "us-east-1", Date: "2024-01-01", DiscountStatus: "Used"},
			{Cost: 50, Service: "S3", Region: "us-west-2", Date: "2024-01-01", DiscountStatus: "None"},
		},
		ColumnMapping: entity.ColumnMapping{"ServiceName": "ServiceName"},
		TotalRows:     2,
		SampleSize:    2,
	}
}

func TestExportToCSV(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	path, err := repo.ExportToCSV(sampleResult(), "analysis", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "analysis_"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Cost", rows[0][0])
	assert.Equal(t, "EC2", rows[1][1])
	assert.Equal(t, "us-west-2", rows[2][2])
}

func TestExportToJSON(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	path, err := repo.ExportToJSON(sampleResult(), "analysis", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 150.0, decoded.Summary.TotalSpend)
	assert.Equal(t, 2, decoded.TotalRows)
	assert.Len(t, decoded.Records, 2)
}

func TestWriteReportPDF(t *testing.T) {
	repo := &ExportRepositoryImpl{}

	req := &entity.ReportRequest{
		Period:     "2024-01-01 to 2024-01-31",
		TotalSpend: 150,
		TopServices: []entity.NamedCost{
			{Name: "EC2", Cost: 100},
			{Name: "S3", Cost: 50},
		},
		TopRegions: []entity.NamedCost{
			{Name: "us-east-1", Cost: 100},
		},
		OptimizationData: entity.OptimizationData{
			TotalPotentialSavings: 50,
			HighConfidencePercent: 70,
			UnderReviewPercent:    30,
			IdleResources:         3,
			RightSizing:           2,
			Commitments:           1,
		},
		TopServicePercent: 66.7,
		TaggedPercent:     80,
		ProdPercent:       60,
	}

	var buf bytes.Buffer
	require.NoError(t, repo.WriteReportPDF(&buf, req))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with the PDF magic bytes")
	assert.Greater(t, buf.Len(), 1000)
}

func TestExportReportToPDF(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	path, err := repo.ExportReportToPDF(&entity.ReportRequest{Period: "2024-01", TotalSpend: 10}, "report", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
