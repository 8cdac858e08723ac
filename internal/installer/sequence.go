package installer

import "strings"

// Separator terminates every fragment of a Sequence. Chaining with && makes the
// shell stop at the first failing fragment.
const Separator = " &&\n"

// Sequence is an ordered list of shell command fragments. Order matters: later
// fragments assume the earlier ones succeeded.
type Sequence []string

// Add appends fragments to the end of the sequence.
func (s *Sequence) Add(fragments ...string) {
	*s = append(*s, fragments...)
}

// Extend appends every fragment of other, keeping its order.
func (s *Sequence) Extend(other Sequence) {
	*s = append(*s, other...)
}

// Fragments returns a copy of the fragments.
func (s Sequence) Fragments() []string {
	return append([]string(nil), s...)
}

// String serializes the sequence, terminating every fragment with Separator.
func (s Sequence) String() string {
	var sb strings.Builder
	for _, fragment := range s {
		sb.WriteString(fragment)
		sb.WriteString(Separator)
	}
	return sb.String()
}

// TrimSeparator strips exactly one trailing Separator, if present.
func TrimSeparator(command string) string {
	return strings.TrimSuffix(command, Separator)
}
