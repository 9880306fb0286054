// ABOUTME: Concurrency cap for extraction requests backed by a weighted semaphore
// ABOUTME: Requests wait for a free slot; a request cancelled while waiting is handed to the failure callback

package middleware

import (
	"net/http"

	"golang.org/x/sync/semaphore"
)

// WaitFailure writes the response for a request that gave up waiting for a slot
type WaitFailure func(w http.ResponseWriter, r *http.Request, err error)

// InFlightLimit allows at most limit requests to run next concurrently.
// A limit of zero or less disables the cap. A nil onFail answers a bare
// 500 ERROR.
func InFlightLimit(limit int, onFail WaitFailure) func(http.Handler) http.Handler {
	if onFail == nil {
		onFail = func(w http.ResponseWriter, r *http.Request, err error) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("ERROR"))
		}
	}

	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		sem := semaphore.NewWeighted(int64(limit))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sem.Acquire(r.Context(), 1); err != nil {
				onFail(w, r, err)
				return
			}
			defer sem.Release(1)

			next.ServeHTTP(w, r)
		})
	}
}
