package types

// OperationStatus defines the state of an operation
type OperationStatus string

const (
	// StatusReady means the operation is planned and not yet executed
	StatusReady OperationStatus = "ready"
	// StatusMoved means the file was renamed
	StatusMoved OperationStatus = "moved"
	// StatusUnchanged means source and destination are the same path
	StatusUnchanged OperationStatus = "unchanged"
	// StatusSimulated means the rename was only recorded (dry run)
	StatusSimulated OperationStatus = "simulated"
	// StatusFailed means the rename was attempted and failed
	StatusFailed OperationStatus = "failed"
	// StatusPending means the rename was never attempted because an earlier one failed
	StatusPending OperationStatus = "pending"
)

// Operation moves one file.
type Operation struct {
	// SourceName is the matched file name inside the source directory
	SourceName string `json:"sourceName" yaml:"sourceName"`
	// Source is the full source path
	Source string `json:"source" yaml:"source"`
	// DestinationName is the rebuilt file name
	DestinationName string `json:"destinationName" yaml:"destinationName"`
	// Destination is the full destination path
	Destination string          `json:"destination" yaml:"destination"`
	Status      OperationStatus `json:"status" yaml:"status"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// IsIdentity reports whether the operation would leave the file in place.
func (o Operation) IsIdentity() bool {
	return o.Source == o.Destination
}
