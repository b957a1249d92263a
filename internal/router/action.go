package router

// Action enumerates the operations the router can dispatch to. Classification
// is a pure function of the resolved method and id presence, which keeps the
// routing table testable independently of any store.
type Action int

const (
	ActionUnsupported Action = iota
	ActionPreflight
	ActionList
	ActionGet
	ActionCreate
	ActionUpdate
	ActionDelete
)

// String returns the action name for logging
func (a Action) String() string {
	switch a {
	case ActionPreflight:
		return "preflight"
	case ActionList:
		return "list"
	case ActionGet:
		return "get"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "unsupported"
	}
}

// Classify selects the action for a normalized method and id presence.
//
// OPTIONS matches regardless of id, DELETE may take its id from the body so it
// also matches either way, and POST with a path id deliberately falls through
// to unsupported: create payloads carry the id in the body, never the path.
func Classify(method string, hasID bool) Action {
	switch method {
	case "OPTIONS":
		return ActionPreflight
	case "GET":
		if hasID {
			return ActionGet
		}
		return ActionList
	case "POST":
		if hasID {
			return ActionUnsupported
		}
		return ActionCreate
	case "PUT":
		if hasID {
			return ActionUpdate
		}
		return ActionUnsupported
	case "DELETE":
		return ActionDelete
	default:
		return ActionUnsupported
	}
}
