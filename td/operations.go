package td

import (
	"fmt"

	gowot "github.com/reoring/gowot"
)

// ThingOp is an operation on a Thing-level form.
type ThingOp string

// PropertyOp is an operation on a property form.
type PropertyOp string

// ActionOp is an operation on an action form.
type ActionOp string

// EventOp is an operation on an event form.
type EventOp string

const (
	OpReadAllProperties       ThingOp = "readallproperties"
	OpWriteAllProperties      ThingOp = "writeallproperties"
	OpReadMultipleProperties  ThingOp = "readmultipleproperties"
	OpWriteMultipleProperties ThingOp = "writemultipleproperties"
	OpObserveAllProperties    ThingOp = "observeallproperties"
	OpUnobserveAllProperties  ThingOp = "unobserveallproperties"
	OpSubscribeAllEvents      ThingOp = "subscribeallevents"
	OpUnsubscribeAllEvents    ThingOp = "unsubscribeallevents"
	OpQueryAllActions         ThingOp = "queryallactions"

	OpReadProperty      PropertyOp = "readproperty"
	OpWriteProperty     PropertyOp = "writeproperty"
	OpObserveProperty   PropertyOp = "observeproperty"
	OpUnobserveProperty PropertyOp = "unobserveproperty"

	OpInvokeAction ActionOp = "invokeaction"
	OpQueryAction  ActionOp = "queryaction"
	OpCancelAction ActionOp = "cancelaction"

	OpSubscribeEvent   EventOp = "subscribeevent"
	OpUnsubscribeEvent EventOp = "unsubscribeevent"
)

// Operation is the set of operation families. Each form is typed by exactly
// one of them.
type Operation interface {
	ThingOp | PropertyOp | ActionOp | EventOp
}

// opFamily builds the codec for one family. Unknown names inside an array
// are dropped; a lone unknown name is an error.
func opFamily[O ~string](name string, ops ...O) gowot.ScalarCodec[O] {
	known := make(map[string]O, len(ops))
	for _, op := range ops {
		known[string(op)] = op
	}
	return gowot.ScalarCodec[O]{
		Name: name,
		FromString: func(s string) (O, error) {
			if op, ok := known[s]; ok {
				return op, nil
			}
			return "", gowot.InvalidValue(gowot.CodeInvalidEnum, fmt.Sprintf("%q is not a %s", s, name))
		},
		ToString:    func(op O) string { return string(op) },
		DropInvalid: true,
	}
}

var (
	// ThingOps decodes "op" on Thing-level forms.
	ThingOps = opFamily("thing operation",
		OpReadAllProperties, OpWriteAllProperties, OpReadMultipleProperties, OpWriteMultipleProperties,
		OpObserveAllProperties, OpUnobserveAllProperties, OpSubscribeAllEvents, OpUnsubscribeAllEvents,
		OpQueryAllActions)
	// PropertyOps decodes "op" on property forms.
	PropertyOps = opFamily("property operation", OpReadProperty, OpWriteProperty, OpObserveProperty, OpUnobserveProperty)
	// ActionOps decodes "op" on action forms.
	ActionOps = opFamily("action operation", OpInvokeAction, OpQueryAction, OpCancelAction)
	// EventOps decodes "op" on event forms.
	EventOps = opFamily("event operation", OpSubscribeEvent, OpUnsubscribeEvent)
)

// OpsFor returns the codec of family O.
func OpsFor[O Operation]() gowot.ScalarCodec[O] {
	var zero O
	switch any(zero).(type) {
	case ThingOp:
		return any(ThingOps).(gowot.ScalarCodec[O])
	case PropertyOp:
		return any(PropertyOps).(gowot.ScalarCodec[O])
	case ActionOp:
		return any(ActionOps).(gowot.ScalarCodec[O])
	default:
		return any(EventOps).(gowot.ScalarCodec[O])
	}
}

// formKind is the entity kind tag of a form of family O.
func formKind[O Operation]() string {
	var zero O
	switch any(zero).(type) {
	case ThingOp:
		return "ThingForm"
	case PropertyOp:
		return "PropertyForm"
	case ActionOp:
		return "ActionForm"
	default:
		return "EventForm"
	}
}
