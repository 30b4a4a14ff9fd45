package domain

import "context"

// RecordSource supplies the raw planet catalog.
type RecordSource interface {
	// FetchRecords performs one request against the catalog and returns its
	// records. Failures are reported as *NetworkError.
	FetchRecords(ctx context.Context) ([]RawRecord, error)
}
