package service

// CacheLookupResult labels the outcome of a session cache read.
type CacheLookupResult string

const (
	CacheLookupHit     CacheLookupResult = "hit"
	CacheLookupMiss    CacheLookupResult = "miss"
	CacheLookupError   CacheLookupResult = "error"
	CacheLookupCorrupt CacheLookupResult = "corrupt"
)

// AuthMetrics records authentication outcomes.
type AuthMetrics interface {
	RecordCacheLookup(result CacheLookupResult)
	RecordCacheWriteFailure()
	RecordAuthFailure(reason string)
}
