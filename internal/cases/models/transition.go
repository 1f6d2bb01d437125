package models

// Transition is the side effect selected by the status a case reaches after
// a workflow advance. The set is closed: DemandTransition, AdmissionTransition
// and NoTransition.
type Transition interface {
	isTransition()
}

// DemandTransition asks billing to raise a demand for the case.
type DemandTransition struct{}

// AdmissionTransition assigns the access code and then the case numbers.
type AdmissionTransition struct{}

// NoTransition carries the status that triggered nothing.
type NoTransition struct {
	Status string
}

func (DemandTransition) isTransition()    {}
func (AdmissionTransition) isTransition() {}
func (NoTransition) isTransition()        {}

// TransitionStatuses names the workflow statuses that trigger side effects.
type TransitionStatuses struct {
	CreateDemand string
	Admitted     string
}

// TransitionsFor checks status against each trigger on its own and returns
// the matches, demand before admission. A status matching neither yields a
// single NoTransition. Empty trigger statuses never match.
func (t TransitionStatuses) TransitionsFor(status string) []Transition {
	if status == "" {
		return []Transition{NoTransition{}}
	}
	var out []Transition
	if status == t.CreateDemand {
		out = append(out, DemandTransition{})
	}
	if status == t.Admitted {
		out = append(out, AdmissionTransition{})
	}
	if len(out) == 0 {
		return []Transition{NoTransition{Status: status}}
	}
	return out
}
