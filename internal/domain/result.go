package domain

type Status int

const (
	StatusSuccess Status = iota
	StatusSourceMissing
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSourceMissing:
		return "source_missing"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// CopyResult is the outcome of one mapping entry. Size is set for
// StatusSuccess, Err for StatusError.
type CopyResult struct {
	Item   CopyItem
	Status Status
	Size   int64
	Err    error
}

func Copied(item CopyItem, size int64) CopyResult {
	return CopyResult{Item: item, Status: StatusSuccess, Size: size}
}

func SourceMissing(item CopyItem) CopyResult {
	return CopyResult{Item: item, Status: StatusSourceMissing}
}

func CopyFailed(item CopyItem, err error) CopyResult {
	return CopyResult{Item: item, Status: StatusError, Err: err}
}

type ListingEntry struct {
	Name string
	Size int64
}

// Listing holds the matching destination entries found before Err, if any,
// stopped the enumeration.
type Listing struct {
	Entries []ListingEntry
	Err     error
}

type Report struct {
	Plan    CopyPlan
	Results []CopyResult
	Listing Listing
}

func (r Report) Counts() (copied, missing, failed int) {
	for _, result := range r.Results {
		switch result.Status {
		case StatusSuccess:
			copied++
		case StatusSourceMissing:
			missing++
		case StatusError:
			failed++
		}
	}
	return copied, missing, failed
}

// Failed reports whether any entry did not copy or the listing failed.
func (r Report) Failed() bool {
	_, missing, failed := r.Counts()
	return missing > 0 || failed > 0 || r.Listing.Err != nil
}
