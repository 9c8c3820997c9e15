package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
)

// Timeout gives the handler limit to finish. The handler writes into a
// buffer that is copied out when it returns in time. Otherwise the client
// gets a 504 problem, the handler's context is cancelled, and its later
// writes fail with http.ErrHandlerTimeout. A handler panic is re-raised on
// the serving goroutine so Recovery sees it.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			finished := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
						return
					}
					close(finished)
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-finished:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				dto.StatusProblem(r, http.StatusGatewayTimeout, "request exceeded "+limit.String()).Render(w, r)
			}
		})
	}
}

// bufferedResponse holds a response until Timeout decides its fate.
// The handler owns header until it returns.
type bufferedResponse struct {
	header http.Header

	mu        sync.Mutex
	status    int
	body      bytes.Buffer
	abandoned bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.abandoned {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
