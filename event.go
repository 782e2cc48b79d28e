package tvision

import "fmt"

// EventType tags the variant held by an Event.
type EventType uint8

const (
	EvNothing EventType = iota
	EvKeyDown
	EvMouseDown
	EvMouseUp
	EvMouseMove
	EvMouseAuto
	EvMouseWheelUp
	EvMouseWheelDown
	EvCommand
	EvBroadcast
)

var eventNames = [...]string{
	EvNothing:        "Nothing",
	EvKeyDown:        "KeyDown",
	EvMouseDown:      "MouseDown",
	EvMouseUp:        "MouseUp",
	EvMouseMove:      "MouseMove",
	EvMouseAuto:      "MouseAuto",
	EvMouseWheelUp:   "WheelUp",
	EvMouseWheelDown: "WheelDown",
	EvCommand:        "Command",
	EvBroadcast:      "Broadcast",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// ButtonMask is the set of mouse buttons held during a mouse event.
type ButtonMask uint8

const (
	ButtonLeft ButtonMask = 1 << iota
	ButtonRight
	ButtonMiddle
)

// MouseEvent carries the pointer position in the receiver's owner coordinates.
type MouseEvent struct {
	Pos     Point
	Buttons ButtonMask
	Double  bool
	Mod     ModMask
}

// Event is the unit of input routed through the view tree. It is mutated in
// place: a view that handles it either clears it (consumed) or rewrites it
// into a command that travels back up through the owners.
type Event struct {
	What    EventType
	Key     KeyEvent
	Mouse   MouseEvent
	Command CommandID
	// Info is an optional payload for commands and broadcasts.
	Info any
}

// KeyPress creates a keyboard event.
func KeyPress(k KeyEvent) Event {
	return Event{What: EvKeyDown, Key: k}
}

// MouseAt creates a mouse event of the given type.
func MouseAt(what EventType, p Point, buttons ButtonMask) Event {
	return Event{What: what, Mouse: MouseEvent{Pos: p, Buttons: buttons}}
}

// CommandEvent creates a command event.
func CommandEvent(id CommandID) Event {
	return Event{What: EvCommand, Command: id}
}

// BroadcastEvent creates a broadcast event with an optional payload.
func BroadcastEvent(id CommandID, info any) Event {
	return Event{What: EvBroadcast, Command: id, Info: info}
}

// Clear marks the event as consumed.
func (e *Event) Clear() {
	*e = Event{}
}

// ToCommand rewrites the event in place into a command.
func (e *Event) ToCommand(id CommandID) {
	*e = Event{What: EvCommand, Command: id}
}

// Pending reports whether the event still needs handling.
func (e *Event) Pending() bool {
	return e.What != EvNothing
}

// IsMouse reports whether the event is any mouse variant.
func (e *Event) IsMouse() bool {
	return e.What >= EvMouseDown && e.What <= EvMouseWheelDown
}

// IsKey reports whether the event is a key press.
func (e *Event) IsKey() bool {
	return e.What == EvKeyDown
}

func (e Event) String() string {
	switch {
	case e.What == EvKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key)
	case e.IsMouse():
		return fmt.Sprintf("%s(%d,%d)", e.What, e.Mouse.Pos.X, e.Mouse.Pos.Y)
	case e.What == EvCommand || e.What == EvBroadcast:
		return fmt.Sprintf("%s(%d)", e.What, e.Command)
	}
	return e.What.String()
}
