package oath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gregLibert/oathmfa/pkg/apdu"
	"github.com/gregLibert/oathmfa/pkg/tlv"
)

// scriptedCard replays one raw reply per Transmit call.
type scriptedCard struct {
	replies [][]byte
	calls   [][]byte
	next    int
}

func (s *scriptedCard) Transmit(cmd []byte) ([]byte, error) {
	s.calls = append(s.calls, append([]byte(nil), cmd...))
	r := s.replies[s.next]
	s.next++
	return r, nil
}

// S1 - select without auth.
func TestClient_Select_NoAuth(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{
		tlv.Hex("79 03 05 02 04 71 08 00 01 02 03 04 05 06 07 90 00"),
	}}

	sel, err := NewClient(card).Select()
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	wantCmd := tlv.Hex("00 A4 04 00 07 A0 00 00 05 27 21 01")
	if diff := cmp.Diff(wantCmd, card.calls[0]); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]byte{0x05, 0x02, 0x04}, sel.Version); diff != "" {
		t.Errorf("version mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tlv.Hex("00 01 02 03 04 05 06 07"), sel.Name); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}
	if sel.Auth != nil {
		t.Errorf("Auth = %+v, want nil", sel.Auth)
	}
}

// S4 - auth required.
func TestClient_Select_AuthRequired(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{{0x69, 0x82}}}

	_, err := NewClient(card).Select()
	apduErr, ok := err.(*apdu.Error)
	if !ok || apduErr.Kind != apdu.AuthRequired {
		t.Fatalf("Select() error = %v, want AuthRequired", err)
	}
}

// S5 - multi-frame select.
func TestClient_Select_MultiFrame(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{
		tlv.Hex("79 03 05 02 04 71 07 00 01 02 61 04"),
		tlv.Hex("03 04 05 06 90 00"),
	}}

	sel, err := NewClient(card).Select()
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := tlv.Hex("00 01 02 03 04 05 06")
	if diff := cmp.Diff(want, sel.Name); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(tlv.Hex("00 A5 00 00"), card.calls[1]); diff != "" {
		t.Errorf("continuation command mismatch (-want +got):\n%s", diff)
	}
}

// S2 - calculate truncated, 6 digits.
func TestClient_Calculate_Truncated(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{
		tlv.Hex("76 05 06 1A 2B 3C 4D 90 00"),
	}}

	code, err := NewClient(card).Calculate(true, []byte("issuer"), tlv.Hex("00 00 00 00 02 FB F4 B5"))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if code.Digits != 6 {
		t.Errorf("Digits = %d, want 6", code.Digits)
	}
	if diff := cmp.Diff(tlv.Hex("1A 2B 3C 4D"), code.Truncated); diff != "" {
		t.Errorf("Truncated mismatch (-want +got):\n%s", diff)
	}
}

// S3 - calculate_all mixed.
func TestClient_CalculateAll_Mixed(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{buildS3Reply()}}

	it, err := NewClient(card).CalculateAll(true, tlv.Hex("00 00 00 00 00 00 00 01"))
	if err != nil {
		t.Fatalf("CalculateAll: %v", err)
	}

	var got []Entry
	for {
		e, ok, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		// copy, since the iterator aliases a buffer that later calls could reuse
		name := append([]byte(nil), e.Name...)
		e.Name = name
		if e.Kind == KindCode {
			e.Code.Truncated = append([]byte(nil), e.Code.Truncated...)
		}
		got = append(got, e)
	}

	want := []Entry{
		{Name: []byte("abc"), Kind: KindCode, Code: Code{Digits: 6, Truncated: []byte{0x00, 0x00, 0x00, 0x01}}},
		{Name: []byte("xyz"), Kind: KindHOTP},
		{Name: []byte("pqr"), Kind: KindTouch},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func buildS3Reply() []byte {
	var b []byte
	b = append(b, 0x71, 0x03)
	b = append(b, []byte("abc")...)
	b = append(b, 0x76, 0x05, 0x06, 0x00, 0x00, 0x00, 0x01)
	b = append(b, 0x71, 0x03)
	b = append(b, []byte("xyz")...)
	b = append(b, 0x77, 0x00)
	b = append(b, 0x71, 0x03)
	b = append(b, []byte("pqr")...)
	b = append(b, 0x7C, 0x00)
	b = append(b, 0x90, 0x00)
	return b
}

func TestClient_CalculateAll_Empty(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{{0x90, 0x00}}}

	it, err := NewClient(card).CalculateAll(true, tlv.Hex("00"))
	if err != nil {
		t.Fatalf("CalculateAll: %v", err)
	}

	_, ok, err := it.Next()
	if err != nil || ok {
		t.Fatalf("Next() on empty list = (%v, %v, %v), want (_, false, nil)", Entry{}, ok, err)
	}
}

func TestClient_List(t *testing.T) {
	card := &scriptedCard{replies: [][]byte{
		append(append([]byte{0x72, 0x04, 0x21}, []byte("abc")...), 0x90, 0x00),
	}}

	creds, err := NewClient(card).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(creds) != 1 {
		t.Fatalf("got %d credentials, want 1", len(creds))
	}
	if creds[0].Algorithm != 0x01 || creds[0].Type != 0x02 {
		t.Errorf("Algorithm/Type = %X/%X, want 1/2", creds[0].Algorithm, creds[0].Type)
	}
	if string(creds[0].Name) != "abc" {
		t.Errorf("Name = %q, want %q", creds[0].Name, "abc")
	}
}
