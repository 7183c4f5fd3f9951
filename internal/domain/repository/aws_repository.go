package repository

import (
	"context"
	"io"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions: the live cost
// source (Cost Explorer) and billing exports stored in S3.
type AWSRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetAccountID(ctx context.Context, profile string) (string, error)

	// Cost Operations
	// FetchDailyRecords synthesizes normalized cost records from Cost
	// Explorer so live data flows through the same aggregation pipeline as
	// an uploaded CSV.
	FetchDailyRecords(ctx context.Context, profile string, days int) ([]entity.NormalizedRecord, error)

	// Object Operations
	// OpenObject streams a billing export referenced by an s3://bucket/key URI.
	OpenObject(ctx context.Context, profile, uri string) (io.ReadCloser, error)
}
