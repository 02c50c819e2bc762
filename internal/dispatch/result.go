package dispatch

import "encoding/json"

// Result is the outcome of one dispatch: exactly one of Response or Failure is meaningful.
// Response is the provider payload, passed through without interpretation.
type Result struct {
	Response json.RawMessage
	Failure  *Failure
}

func succeeded(resp json.RawMessage) Result {
	return Result{Response: resp}
}

func failed(f *Failure) Result {
	return Result{Failure: f}
}

// OK reports whether the dispatch succeeded.
func (r Result) OK() bool { return r.Failure == nil }

// Err returns the failure as an error, or nil on success.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// Kind returns the failure kind, or "" on success.
func (r Result) Kind() Kind {
	if r.Failure == nil {
		return ""
	}
	return r.Failure.Kind
}
