package gateway

import "maps"

// Payload is a JSON object under construction. Its methods never modify the
// receiver; each returns a new Payload so that builder steps stay pure.
type Payload map[string]any

// With returns a copy of p with key set to v.
func (p Payload) With(key string, v any) Payload {
	out := maps.Clone(p)
	if out == nil {
		out = Payload{}
	}
	out[key] = v
	return out
}

// WithIn sets v at the nested path, copying every object along the way.
func (p Payload) WithIn(path []string, v any) Payload {
	if len(path) == 1 {
		return p.With(path[0], v)
	}
	child := p.Object(path[0])
	return p.With(path[0], child.WithIn(path[1:], v))
}

// Without returns a copy of p lacking key.
func (p Payload) Without(key string) Payload {
	out := maps.Clone(p)
	delete(out, key)
	return out
}

// Object returns the nested object under key, or nil if absent.
func (p Payload) Object(key string) Payload {
	switch obj := p[key].(type) {
	case Payload:
		return obj
	case map[string]any:
		return Payload(obj)
	}
	return nil
}

// Merge returns a copy of p with every entry of other added on top.
func (p Payload) Merge(other Payload) Payload {
	out := maps.Clone(p)
	if out == nil {
		out = Payload{}
	}
	maps.Copy(out, other)
	return out
}
