package application

// Action names a mutation attempted on an owned resource.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Owned is any resource with a single owning user.
type Owned interface {
	OwnerID() string
}

// Authorize is the one ownership predicate applied by every mutating
// operation: only the owner may act, regardless of action.
func Authorize(userID string, resource Owned, _ Action) bool {
	return resource.OwnerID() == userID
}
