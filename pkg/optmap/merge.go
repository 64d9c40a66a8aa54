package optmap

// Merge combines layers in increasing precedence. When both sides hold maps
// under the same key they are merged recursively; otherwise the later layer
// wins, including when it holds a scalar such as false. No layer is mutated.
func Merge(layers ...Map) Map {
	out := Map{}
	for _, layer := range layers {
		out = mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src Map) Map {
	for key, value := range src {
		incoming, incomingIsMap := AsMap(value)
		current, currentIsMap := AsMap(dst[key])
		switch {
		case incomingIsMap && currentIsMap:
			dst[key] = mergeInto(current.Clone(), incoming)
		case incomingIsMap:
			dst[key] = incoming.Clone()
		default:
			dst[key] = value
		}
	}
	return dst
}
