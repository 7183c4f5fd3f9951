package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseS3URI(t *testing.T) {
	tests := map[string]struct {
		uri       string
		bucket    string
		key       string
		expectErr bool
	}{
		"simple object":       {uri: "s3://billing/export.csv", bucket: "billing", key: "export.csv"},
		"nested key":          {uri: "s3://billing/2024/01/export.csv", bucket: "billing", key: "2024/01/export.csv"},
		"missing scheme":      {uri: "/tmp/export.csv", expectErr: true},
		"bucket without key":  {uri: "s3://billing", expectErr: true},
		"empty key":           {uri: "s3://billing/", expectErr: true},
		"empty bucket":        {uri: "s3:///export.csv", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			bucket, key, err := parseS3URI(tt.uri)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
