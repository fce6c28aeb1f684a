package vopt

// Record is a single validated view option: a name and its canonical wire
// value, both already in the exact form the query assembler writes out.
//
// A Record is populated atomically by Assign or AssignID; a failed
// assignment leaves it empty. Records are not safe for concurrent
// mutation, but distinct records may be assigned concurrently.
type Record struct {
	name  string
	value string
}

// Name returns the option name. For recognized options this is the
// registry's canonical spelling; for passthrough options it is the
// caller-supplied name verbatim.
func (r *Record) Name() string {
	return r.name
}

// Value returns the canonical wire value.
func (r *Record) Value() string {
	return r.value
}

// IsAssigned reports whether the record holds a validated option.
func (r *Record) IsAssigned() bool {
	return r.name != ""
}

// Reset clears the record back to the empty state. Safe to call any
// number of times, including on a never-assigned record.
func (r *Record) Reset() {
	*r = Record{}
}

// List is an ordered sequence of assigned records. The order is
// significant: the query assembler serializes options exactly as listed,
// duplicates included.
type List []*Record

// Reset clears every record in the list.
func (l List) Reset() {
	for _, r := range l {
		r.Reset()
	}
}
