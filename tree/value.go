package tree

// Wrapped boxes a scalar behind an explicit tag. Upstream producers (a UI
// layer, typically) hand over widget-like objects whose payload sits one
// level down; wrapping in Wrapped marks that payload so writes store the
// inner value rather than the box.
type Wrapped struct {
	Value any
}

// Unwrap returns the payload of a Wrapped or *Wrapped, and any other value
// unchanged. A nil *Wrapped unwraps to nil.
func Unwrap(v any) any {
	switch w := v.(type) {
	case Wrapped:
		return w.Value
	case *Wrapped:
		if w == nil {
			return nil
		}

		return w.Value
	default:
		return v
	}
}
