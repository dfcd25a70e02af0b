package async

import (
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
)

type Errors struct {
	E []error
}

var _ error = (*Errors)(nil)

func (e Errors) Wrapped() error {
	if len(e.E) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	var sb strings.Builder
	l := len(e.E)
	for i, err := range e.E {
		sb.WriteString(err.Error())
		if i < l-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// Map applies f to every element of src with at most concurrencyLimit calls in flight.
// Results keep the order of src. A non-positive limit runs everything at once.
// Errors from all calls are collected; the result slot of a failed call holds f's
// returned value.
func Map[T any, D any](src []T, concurrencyLimit int, f func(T) (D, error)) ([]D, error) {
	if len(src) == 0 {
		return []D{}, nil
	}

	if concurrencyLimit <= 0 {
		concurrencyLimit = len(src)
	}
	concurrencyLimit = min(concurrencyLimit, len(src))

	var wg sync.WaitGroup

	limiter := make(chan struct{}, concurrencyLimit)

	// every goroutine owns exactly one slot of each slice
	results := make([]D, len(src))
	errs := make([]error, len(src))

	wg.Add(len(src))
	for i, element := range src {
		limiter <- struct{}{}
		go func(i int, el T) {
			defer func() {
				<-limiter
				wg.Done()
			}()

			results[i], errs[i] = f(el)
		}(i, element)
	}

	wg.Wait()

	collected := Errors{}
	for _, err := range errs {
		if err != nil {
			collected.E = append(collected.E, err)
		}
	}

	return results, collected.Wrapped()
}

func FlatMap[T any, D any](src []T, concurrencyLimit int, f func(T) ([]D, error)) ([]D, error) {
	r, err := Map(src, concurrencyLimit, f)
	if err != nil {
		return nil, err
	}

	flattened := make([]D, 0, len(r))
	for _, v := range r {
		flattened = append(flattened, v...)
	}

	return flattened, nil
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	} else {
		return b
	}
}
