/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status      health.AvailabilityStatus `json:"status"`
	CurrentTime time.Time                 `json:"current_time"`
	Components  map[string]checkResult    `json:"components,omitempty"`
}

type checkResult struct {
	Status              health.AvailabilityStatus `json:"status"`
	Error               string                    `json:"error,omitempty"`
	LastResponseTime    string                    `json:"last_response_time,omitempty"`
	AverageResponseTime string                    `json:"avg_response_time,omitempty"`
}

// JSONResultWriter writes checker results as JSON, decorated with the response times
// collected by ResponseTimeInterceptor.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
}

func NewJSONResultWriter(rt *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: rt,
	}
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	r := &healthStatus{Status: result.Status, CurrentTime: time.Now().UTC()}

	if len(result.Details) > 0 {
		r.Components = map[string]checkResult{}

		for name, cr := range result.Details {
			c := checkResult{Status: cr.Status}

			if cr.Error != nil {
				c.Error = cr.Error.Error()
			}

			if t, ok := rw.responseTimes.Get(name); ok {
				c.LastResponseTime = t.LastResponseTime.String()
				c.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = c
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)
	return err
}

// ResponseTimes holds per-check response times shared between the interceptor and the writer.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

func (rt *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	if rt == nil {
		return ResponseTimeState{}, false
	}

	rt.mu.RLock()
	defer rt.mu.RUnlock()

	s, ok := rt.states[name]

	return s, ok
}

func (rt *ResponseTimes) record(name string, elapsed time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	prev, ok := rt.states[name]
	if !ok {
		rt.states[name] = ResponseTimeState{
			LastResponseTime:    elapsed,
			AverageResponseTime: elapsed,
		}

		return
	}

	rt.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (prev.AverageResponseTime + elapsed) / 2, //nolint:mnd
	}
}
