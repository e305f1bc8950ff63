package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid aceita apenas os quatro valores do enum. Transições entre
// eles não são restringidas (qualquer status pode virar qualquer
// outro) -- comportamento herdado do sistema original.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}
