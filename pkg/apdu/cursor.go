package apdu

// Response is a forward cursor over the TLV payload returned by a
// completed exchange. It never sees the status word: that was stripped
// and classified by Transmit before the cursor was constructed.
type Response struct {
	data []byte
}

// NewResponse wraps a payload slice. The slice aliases the request's
// shared buffer and is only valid until that buffer is next reset.
func NewResponse(data []byte) *Response {
	return &Response{data: data}
}

// IsEmpty reports whether no bytes remain.
func (r *Response) IsEmpty() bool {
	return len(r.data) == 0
}

// Pop reads one TLV triple, verifying its tag equals expectedTag, and
// advances the cursor past it. Order of Pop calls must reflect the wire
// order of the grammar being parsed; the cursor has no lookahead.
func (r *Response) Pop(expectedTag byte) ([]byte, error) {
	if len(r.data) < 2 {
		return nil, &Error{Kind: InsufficientData}
	}

	tag := r.data[0]
	if tag != expectedTag {
		return nil, &Error{Kind: UnexpectedTag, Tag: tag}
	}

	length := int(r.data[1])
	if len(r.data) < 2+length {
		return nil, &Error{Kind: InsufficientData}
	}

	value := r.data[2 : 2+length]
	r.data = r.data[2+length:]
	return value, nil
}

// PeekTag returns the next tag without consuming it, or ok=false if the
// cursor is exhausted. calculate_all uses this to dispatch on which of
// several possible tags introduces the next entry's response.
func (r *Response) PeekTag() (tag byte, ok bool) {
	if len(r.data) == 0 {
		return 0, false
	}
	return r.data[0], true
}
