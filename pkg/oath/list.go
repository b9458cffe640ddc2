package oath

import (
	"github.com/gregLibert/oathmfa/pkg/apdu"
	"github.com/gregLibert/oathmfa/pkg/bits"
)

// List enumerates every credential stored on the card without computing
// any of them. Each entry's single tagNameList TLV packs the algorithm
// into the low nibble of its first byte and the OATH type into the high
// nibble; the remaining bytes are the name.
func (c *Client) List() ([]ListedCredential, error) {
	req := apdu.NewRequest(&c.buf, claStandard, insList, 0x00, 0x00)

	resp, err := req.Transmit(c.card)
	if err != nil {
		return nil, err
	}

	var out []ListedCredential
	for !resp.IsEmpty() {
		val, err := resp.Pop(tagNameList)
		if err != nil {
			return nil, err
		}
		if len(val) < 1 {
			return nil, &apdu.Error{Kind: apdu.InsufficientData}
		}
		out = append(out, ListedCredential{
			Algorithm: bits.LowNibble(val[0]),
			Type:      bits.HighNibble(val[0]),
			Name:      val[1:],
		})
	}
	return out, nil
}
