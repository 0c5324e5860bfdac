package health

// Status is the outcome of a single health check or of an aggregate.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// Kind classifies a check the way orchestrators poll it.
type Kind string

const (
	KindReadiness Kind = "readiness"
	KindLiveness  Kind = "liveness"
)

// Response is the result of one check invocation.
type Response struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Report aggregates the responses of several checks.
type Report struct {
	Status Status     `json:"status"`
	Checks []Response `json:"checks"`
}

func Up(name string) Response {
	return Response{Name: name, Status: StatusUp}
}

func Down(name string) Response {
	return Response{Name: name, Status: StatusDown}
}

// FromError maps the outcome of a fallible probe to a response: nil is UP,
// any error is DOWN.
func FromError(name string, err error) Response {
	if err != nil {
		return Down(name)
	}
	return Up(name)
}

// IsUp reports whether the response status is UP.
func (r Response) IsUp() bool { return r.Status == StatusUp }

// Aggregate builds a report whose status is UP only if every response is UP.
// An empty set of responses is UP.
func Aggregate(responses ...Response) Report {
	checks := make([]Response, 0, len(responses))
	overall := StatusUp
	for _, r := range responses {
		if !r.IsUp() {
			overall = StatusDown
		}
		checks = append(checks, r)
	}
	return Report{Status: overall, Checks: checks}
}
