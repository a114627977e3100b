package provisioning

import (
	"github.com/google/uuid"
)

type Status string

const (
	StatusComplete Status = "complete"
	StatusPartial  Status = "partial"
	StatusFailed   Status = "failed"
)

// Outcome is the result of one hotel's provisioning run.
type Outcome struct {
	HotelID uuid.UUID
	Step    Step
	Err     error
}

func (o Outcome) Succeeded() bool { return o.Err == nil && o.Step == StepCompleted }

type Report struct {
	CustomerID uuid.UUID
	Status     Status
	Outcomes   []Outcome
}

// NewReport summarises outcomes. No hotels means nothing to do, which is
// complete.
func NewReport(customerID uuid.UUID, outcomes []Outcome) Report {
	failed := 0
	for _, o := range outcomes {
		if !o.Succeeded() {
			failed++
		}
	}

	status := StatusComplete
	switch {
	case failed == 0:
	case failed == len(outcomes):
		status = StatusFailed
	default:
		status = StatusPartial
	}

	return Report{CustomerID: customerID, Status: status, Outcomes: outcomes}
}

func (r Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			out = append(out, o)
		}
	}
	return out
}

func (r Report) IsComplete() bool { return r.Status == StatusComplete }
