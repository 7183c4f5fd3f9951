package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/shared/types"
)

// Process streams a billing CSV through the full pipeline: the header row is
// read once to detect columns, then each data row is normalized and folded
// into a fresh aggregate. Memory stays bounded by the preview sample and the
// number of distinct days/services/regions, never by file size.
//
// Uma linha malformada é pulada com um aviso no log; um erro de leitura do
// stream descarta o estado parcial e é devolvido ao chamador.
func Process(r io.Reader, logger logrus.FieldLogger) (*entity.AnalysisResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// Arquivo sem sequer um cabeçalho conta como entrada vazia.
		return nil, types.ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = cleanHeader(h)
	}

	mapping := DetectColumns(headers)
	agg := NewAggregator()

	rowIndex := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowIndex++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// RowParseError: recuperado localmente, nunca exposto ao cliente.
				logger.WithError(err).Warnf("skipping row %d: malformed CSV line", rowIndex)
				continue
			}
			return nil, fmt.Errorf("reading CSV stream: %w", err)
		}

		raw := make(entity.RawRow, len(headers))
		for i, h := range headers {
			if i < len(record) {
				raw[h] = record[i]
			}
		}
		agg.Add(NormalizeRow(raw, mapping))
	}

	summary, err := agg.Finalize()
	if err != nil {
		return nil, err
	}

	sample := agg.Sample()
	return &entity.AnalysisResult{
		Summary:       *summary,
		Records:       sample,
		ColumnMapping: mapping,
		TotalRows:     agg.Rows(),
		SampleSize:    len(sample),
	}, nil
}
