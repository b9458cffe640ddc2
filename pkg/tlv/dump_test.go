package tlv

import "testing"

func TestDump(t *testing.T) {
	// 79 03 05 02 04 : version tag with value 05 02 04
	data := Hex("79 03 05 02 04")

	got := Dump(data)
	want := "  79: 050204 (\"...\")"

	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDump_Unparsable(t *testing.T) {
	data := Hex("FF")
	got := Dump(data)
	want := "raw: FF"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestMakeSafeASCII(t *testing.T) {
	input := []byte{0x41, 0x42, 0x00, 0x1F, 0x7F, 0x43} // AB, null, US, DEL, C
	want := "AB...C"                                    // 0x7F (127) is > 126, so it becomes dot

	got := MakeSafeASCII(input)
	if got != want {
		t.Errorf("MakeSafeASCII() = %q, want %q", got, want)
	}
}
