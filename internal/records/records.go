// Package records defines the record shapes stored in the remote collections.
// Each shape validates its own required fields before it is sent anywhere.
package records

// Kind tags a record shape.
type Kind string

const (
	KindReminder Kind = "reminder"
	KindProfile  Kind = "profile"
	KindPost     Kind = "post"
	KindAccount  Kind = "account"
)

// Record is implemented by every shape a remote list can hold.
type Record interface {
	// RecordID returns the server-assigned id, or "" before creation.
	RecordID() string

	// Kind returns the shape tag.
	Kind() Kind

	// Validate checks required fields. It never touches the network.
	Validate() error
}
