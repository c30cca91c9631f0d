package failor

import "github.com/hashicorp/go-multierror"

// Combine merges several effectful results into one: success when every
// input succeeded, otherwise a failure whose cause aggregates every
// failure descriptor in input order.
func Combine(results ...FailureOrNothing) FailureOrNothing {
	var merged *multierror.Error
	for _, r := range results {
		if r.IsFailure() {
			merged = multierror.Append(merged, r.Err())
		}
	}

	if err := merged.ErrorOrNil(); err != nil {
		return FailNothingError(err)
	}
	return SucceedNothing()
}
