package apdu

// Request assembles a single command APDU into a caller-supplied growable
// buffer. The same buffer is reused by Transmit to accumulate the inbound
// payload across GET-RESPONSE continuations, so that TLV slices handed back
// to the OATH client never require a copy. The buffer is exclusively owned
// by the call in progress: starting a new Request on it invalidates any
// slice returned by a previous one.
type Request struct {
	buf     *[]byte
	hasBody bool
}

// NewRequest resets buf and writes the four-byte APDU header.
func NewRequest(buf *[]byte, cla, ins, p1, p2 byte) *Request {
	*buf = (*buf)[:0]
	*buf = append(*buf, cla, ins, p1, p2)
	return &Request{buf: buf}
}

// ensureLc writes the placeholder Lc byte the first time body data is
// pushed; it is patched to the real length in bytes().
func (r *Request) ensureLc() {
	if !r.hasBody {
		*r.buf = append(*r.buf, 0x00)
		r.hasBody = true
	}
}

// PushAID appends a raw AID (used by SELECT, which has no TLV body).
func (r *Request) PushAID(aid []byte) *Request {
	r.ensureLc()
	*r.buf = append(*r.buf, aid...)
	return r
}

// Push appends a tag|len|value TLV triple to the command body.
// The caller guarantees len(value) <= 255.
func (r *Request) Push(tag byte, value []byte) *Request {
	r.ensureLc()
	*r.buf = append(*r.buf, tag, byte(len(value)))
	*r.buf = append(*r.buf, value...)
	return r
}

// bytes patches Lc and returns the fully-encoded command APDU. The returned
// slice aliases the shared buffer and is only valid until the buffer is
// next mutated, which Transmit does immediately after sending it.
func (r *Request) bytes() []byte {
	b := *r.buf
	if r.hasBody {
		b[4] = byte(len(b) - 5)
	}
	return b
}
