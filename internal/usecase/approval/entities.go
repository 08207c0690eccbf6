package approval

// Decision is what an approver does to their stage.
type Decision string

const (
	DecisionApprove Decision = "APPROVED"
	DecisionReject  Decision = "REJECTED"
)

func (d Decision) Valid() bool { return d == DecisionApprove || d == DecisionReject }

type ActInput struct {
	RequestID string
	ActorID   string
	Decision  Decision
	// Optional note; recorded as a "Manager: ..."/"Director: ..."
	// feedback line when non-empty.
	Comment string
}
