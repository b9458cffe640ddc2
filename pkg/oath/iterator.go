package oath

import "github.com/gregLibert/oathmfa/pkg/apdu"

// AllIterator is a lazy, single-pass, non-restartable sequence of Entry
// values parsed from one calculate_all exchange. Items alias the Client's
// shared scratch buffer: advancing the iterator invalidates slices
// returned by the previous call to Next. Once Next returns an error the
// iterator is considered exhausted; it must not be called again.
type AllIterator struct {
	resp      *apdu.Response
	truncate  bool
	done      bool
}

// CalculateAll issues the calculate_all exchange and returns an iterator
// over its entries. The whole exchange has completed by the time this
// returns; Next only walks the already-received payload.
func (c *Client) CalculateAll(truncate bool, challenge []byte) (*AllIterator, error) {
	p2 := byte(0x00)
	if truncate {
		p2 = 0x01
	}

	req := apdu.NewRequest(&c.buf, claStandard, insCalcAll, p1CalcAll, p2)
	req.Push(tagChallenge, challenge)

	resp, err := req.Transmit(c.card)
	if err != nil {
		return nil, err
	}

	return &AllIterator{resp: resp, truncate: truncate}, nil
}

// Next yields the next entry in wire order. ok is false once the cursor is
// exhausted; a non-nil error means this entry (and the iterator) is
// unusable, matching the "stop at first error" contract of §4.4.
func (it *AllIterator) Next() (Entry, bool, error) {
	if it.done || it.resp.IsEmpty() {
		return Entry{}, false, nil
	}

	name, err := it.resp.Pop(tagName)
	if err != nil {
		it.done = true
		return Entry{}, false, err
	}

	tag, ok := it.resp.PeekTag()
	if !ok {
		it.done = true
		return Entry{}, false, &apdu.Error{Kind: apdu.InsufficientData}
	}

	switch tag {
	case tagHOTP:
		if _, err := it.resp.Pop(tagHOTP); err != nil {
			it.done = true
			return Entry{}, false, err
		}
		return Entry{Name: name, Kind: KindHOTP}, true, nil

	case tagTouchRequired:
		if _, err := it.resp.Pop(tagTouchRequired); err != nil {
			it.done = true
			return Entry{}, false, err
		}
		return Entry{Name: name, Kind: KindTouch}, true, nil

	case tagTruncResponse, tagFullResponse:
		expected := tagFullResponse
		if it.truncate {
			expected = tagTruncResponse
		}
		if tag != expected {
			it.done = true
			return Entry{}, false, &apdu.Error{Kind: apdu.UnexpectedTag, Tag: tag}
		}
		val, err := it.resp.Pop(expected)
		if err != nil {
			it.done = true
			return Entry{}, false, err
		}
		if len(val) < 1 {
			it.done = true
			return Entry{}, false, &apdu.Error{Kind: apdu.InsufficientData}
		}
		return Entry{
			Name: name,
			Kind: KindCode,
			Code: Code{Digits: val[0], Truncated: val[1:]},
		}, true, nil

	default:
		it.done = true
		return Entry{}, false, &apdu.Error{Kind: apdu.UnexpectedTag, Tag: tag}
	}
}
