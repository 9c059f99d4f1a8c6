package coordinator

import "github.com/skyops/fieldcoord/core/faults"

// Result is the envelope returned to the presentation collaborator for
// every operation.
type Result struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload,omitempty"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status"` // "ok" or "error"
}

// Envelope kinds.
const (
	KindOperators  = "operators"
	KindEquipment  = "equipment"
	KindMissions   = "missions"
	KindAssignment = "assignment"
	KindCost       = "cost_calculation"
	KindConflicts  = "conflict_check"
	KindStatus     = "status_update"
	KindText       = "text"
)

func ok(kind, message string, payload any) Result {
	return Result{Kind: kind, Payload: payload, Message: message, Status: "ok"}
}

// fail wraps any error into an error envelope. Faults keep their code and
// details so the caller can react programmatically.
func fail(kind string, err error) Result {
	res := Result{Kind: kind, Message: err.Error(), Status: "error"}
	if f, isFault := err.(*faults.Fault); isFault {
		payload := map[string]any{"code": string(f.Code)}
		if len(f.Details) > 0 {
			payload["details"] = f.Details
		}
		res.Payload = payload
	}
	return res
}
