package workflow

const (
	// Signal names
	StopDrainSignalName = "stop-drain"
)

// StopDrainSignal asks a running drain to stop before its next dispatch
type StopDrainSignal struct {
	Reason string `json:"reason"`
}
