package dump

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoadHexWordsParsesTokensInOrder(t *testing.T) {
	got, err := LoadHexWords("0x0000000A 0x0000000B", 8)
	if err != nil {
		t.Fatalf("LoadHexWords error: %v", err)
	}
	if want := []uint32{10, 11}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadHexWords = %v, want %v", got, want)
	}
}

func TestLoadHexWordsIgnoresSurroundingText(t *testing.T) {
	text := "const unsigned int spr[] = {\n\t0xAABBCCDD, 0x00000001,// tail\n\t0x12 0x1234567 };"
	got, err := LoadHexWords(text, 8)
	if err != nil {
		t.Fatalf("LoadHexWords error: %v", err)
	}
	if want := []uint32{0xAABBCCDD, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadHexWords = %#v, want %#v", got, want)
	}
}

func TestLoadHexWordsFailsWithoutTokens(t *testing.T) {
	_, err := LoadHexWords("no hex here, 1234 ABCD", 8)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("LoadHexWords error = %v, want ErrFormat", err)
	}
}

func TestLoadHexWordsRejectsUnsupportedDigitCount(t *testing.T) {
	_, err := LoadHexWords("0x1234", 4)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("LoadHexWords error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadHexBytes(t *testing.T) {
	got, err := LoadHexBytes("0xFF,0x00, 0x7f junk 0x1")
	if err != nil {
		t.Fatalf("LoadHexBytes error: %v", err)
	}
	if want := []byte{0xff, 0x00, 0x7f}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadHexBytes = %v, want %v", got, want)
	}
}

func TestLoadBinaryWordsIsBigEndian(t *testing.T) {
	got, err := LoadBinaryWords([]byte{0x12, 0x34, 0x56, 0x78, 0x00, 0x00, 0x00, 0x01}, 4)
	if err != nil {
		t.Fatalf("LoadBinaryWords error: %v", err)
	}
	if want := []uint32{0x12345678, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadBinaryWords = %#x, want %#x", got, want)
	}
}

func TestLoadBinaryWordsRejectsPartialWord(t *testing.T) {
	_, err := LoadBinaryWords([]byte{1, 2, 3, 4, 5}, 4)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("LoadBinaryWords error = %v, want ErrFormat", err)
	}
}

func TestLoadBinaryWordsSmallerWords(t *testing.T) {
	got, err := LoadBinaryWords([]byte{0xAB, 0xCD, 0x01, 0x02}, 2)
	if err != nil {
		t.Fatalf("LoadBinaryWords error: %v", err)
	}
	if want := []uint32{0xABCD, 0x0102}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadBinaryWords = %#x, want %#x", got, want)
	}
}

func TestSwap32(t *testing.T) {
	if got := Swap32(0x12345678); got != 0x78563412 {
		t.Fatalf("Swap32(0x12345678) = %#x, want 0x78563412", got)
	}
	for _, w := range []uint32{0, 1, 0xff, 0xdeadbeef, 0x80000000, 0xffffffff, 0x00ff00ff} {
		if got := Swap32(Swap32(w)); got != w {
			t.Fatalf("Swap32(Swap32(%#x)) = %#x", w, got)
		}
	}
}
