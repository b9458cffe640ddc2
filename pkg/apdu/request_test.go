package apdu

import "testing"

func TestRequest_HeaderOnly(t *testing.T) {
	buf := make([]byte, 0, 64)
	req := NewRequest(&buf, 0x00, 0xA1, 0x00, 0x00)

	got := req.bytes()
	want := []byte{0x00, 0xA1, 0x00, 0x00}
	if !bytesEqual(got, want) {
		t.Errorf("bytes() = % X, want % X", got, want)
	}
}

func TestRequest_LcPatched(t *testing.T) {
	buf := make([]byte, 0, 64)
	req := NewRequest(&buf, 0x00, 0xA4, 0x04, 0x00)
	req.PushAID([]byte{0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01})

	got := req.bytes()
	want := []byte{0x00, 0xA4, 0x04, 0x00, 0x07, 0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01}
	if !bytesEqual(got, want) {
		t.Errorf("bytes() = % X, want % X", got, want)
	}

	// Invariant 1: send[4] == send.len()-5 whenever send.len() >= 5.
	if int(got[4]) != len(got)-5 {
		t.Errorf("Lc = %d, want %d", got[4], len(got)-5)
	}
}

func TestRequest_MultipleTLVs(t *testing.T) {
	buf := make([]byte, 0, 64)
	req := NewRequest(&buf, 0x00, 0xA2, 0x00, 0x01)
	req.Push(0x71, []byte("issuer"))
	req.Push(0x74, []byte{0x00, 0x00, 0x00, 0x00, 0x02, 0xFB, 0xF4, 0xB5})

	got := req.bytes()
	if int(got[4]) != len(got)-5 {
		t.Errorf("Lc = %d, want %d", got[4], len(got)-5)
	}

	body := got[5:]
	if body[0] != 0x71 || body[1] != 6 {
		t.Fatalf("first TLV header = %X %X", body[0], body[1])
	}
	if string(body[2:8]) != "issuer" {
		t.Errorf("first TLV value = %q, want %q", body[2:8], "issuer")
	}
	if body[8] != 0x74 || body[9] != 8 {
		t.Fatalf("second TLV header = %X %X", body[8], body[9])
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
