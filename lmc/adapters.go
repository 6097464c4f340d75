package lmc

// InputSource supplies one machine word per call. A false ok reports end
// of the input stream. The source is responsible for any blocking; the
// machine calls Next synchronously mid-instruction and never polls.
type InputSource interface {
	Next() (value uint16, ok bool)
}

// OutputSink accepts one machine word per call.
type OutputSink interface {
	Emit(value uint16)
}
