// Package layers defines the architectural layers recognized by barrelint and
// the permitted dependency direction between them.
package layers

// Layer represents an architectural layer derived from path segments.
type Layer int

const (
	Unknown Layer = iota
	Data
	Domain
	Presentation
)

// String returns the display name of the layer.
func (l Layer) String() string {
	switch l {
	case Data:
		return "data"
	case Domain:
		return "domain"
	case Presentation:
		return "presentation"
	default:
		return "unknown"
	}
}

// Parse maps a layer name to its Layer. Unrecognized names parse as
// Unknown, matching the classifier's treatment of unrecognized paths.
func Parse(name string) Layer {
	switch name {
	case "data":
		return Data
	case "domain":
		return Domain
	case "presentation", "ui":
		return Presentation
	default:
		return Unknown
	}
}

// Known reports whether the layer was actually derived from a path token.
func (l Layer) Known() bool {
	return l != Unknown
}

// ImportAllowed reports whether a file in layer `from` may depend on a file
// in layer `to`. The permitted direction is Presentation → Data → Domain:
// domain code depends on nothing outside itself, data code may reach into
// domain, presentation may reach anywhere. Unknown on either side never
// restricts, since an unclassified file carries no layer obligation.
func ImportAllowed(from, to Layer) bool {
	if from == Unknown || to == Unknown {
		return true
	}

	switch from {
	case Domain:
		return to == Domain
	case Data:
		return to == Data || to == Domain
	case Presentation:
		return true
	default:
		return true
	}
}
