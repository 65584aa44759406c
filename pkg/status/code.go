package status

// Code is a status code in the shared space. Zero is success; any other
// value lies in exactly one registered domain's range.
type Code int

// OK is the success code.
const OK Code = 0

// String returns the symbolic name of c, or Code(n) if c lies in no
// domain of the default registry.
func (c Code) String() string {
	return Default().SafeName(c)
}
