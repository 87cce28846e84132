package model

// Access describes the access mode of a node.
// It serializes as the integer enum value mandated by the OSCQuery
// proposal, never as a string.
type Access uint8

const (
	// AccessNone indicates the node carries no accessible value.
	// Groups always have AccessNone.
	AccessNone Access = 0

	// AccessReadOnly indicates the value can be read but not written.
	AccessReadOnly Access = 1

	// AccessWriteOnly indicates the value can be written but not read.
	AccessWriteOnly Access = 2

	// AccessReadWrite indicates the value can be read and written.
	AccessReadWrite Access = 3
)

// Ptr returns a pointer to a, for use in Parameter literals where
// nil selects the read/write default.
func (a Access) Ptr() *Access { return &a }

// String returns the access mode name.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "NONE"
	case AccessReadOnly:
		return "READ"
	case AccessWriteOnly:
		return "WRITE"
	case AccessReadWrite:
		return "READWRITE"
	default:
		return "UNKNOWN"
	}
}
