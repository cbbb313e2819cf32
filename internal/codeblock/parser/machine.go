package parser

// state enumerates the parser's positions in a codeblock. Start is initial;
// End and Error are modelled implicitly by returning from Parse.
type state int

const (
	stateStart state = iota
	statePropertyDeclared
	statePropertyText
	stateFenceOpen
	stateFenceText
	stateFenceClose
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "Start"
	case statePropertyDeclared:
		return "PropertyDeclared"
	case statePropertyText:
		return "PropertyText"
	case stateFenceOpen:
		return "FenceOpen"
	case stateFenceText:
		return "FenceText"
	case stateFenceClose:
		return "FenceClose"
	default:
		return "Unknown"
	}
}

// accepting reports whether end-of-input in this state finalizes parsing.
// Ending inside a fence means the fence was never closed.
func (s state) accepting() bool {
	switch s {
	case statePropertyDeclared, statePropertyText, stateFenceClose:
		return true
	default:
		return false
	}
}

// transitions is the flat (state, category) → state table. A missing entry
// is an invalid transition. Note that property-start and fence-open lines
// observed inside a fence route to FenceText: once a fence is open every
// line except its exact terminator is opaque content.
var transitions = map[state]map[lineCategory]state{
	stateStart: {
		categoryPropertyStart: statePropertyDeclared,
	},
	statePropertyDeclared: {
		categoryPropertyStart: statePropertyDeclared,
		categoryFenceOpen:     stateFenceOpen,
		categoryText:          statePropertyText,
	},
	statePropertyText: {
		categoryPropertyStart: statePropertyDeclared,
		categoryFenceOpen:     stateFenceOpen,
		categoryText:          statePropertyText,
	},
	stateFenceOpen: {
		categoryPropertyStart: stateFenceText,
		categoryFenceOpen:     stateFenceText,
		categoryFenceClose:    stateFenceClose,
		categoryText:          stateFenceText,
	},
	stateFenceText: {
		categoryPropertyStart: stateFenceText,
		categoryFenceOpen:     stateFenceText,
		categoryFenceClose:    stateFenceClose,
		categoryText:          stateFenceText,
	},
	stateFenceClose: {
		categoryPropertyStart: statePropertyDeclared,
		categoryFenceOpen:     stateFenceOpen,
		categoryText:          statePropertyText,
	},
}
