package basic

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"
)

var validationCases = []struct {
	name  string
	input string
	valid bool
}{
	{"empty", "", true},
	{"ascii", "hello, world", true},
	{"two byte", "héllo", true},
	{"three byte", "price: 5€", true},
	{"four byte", "party 🎉", true},
	{"max scalar", "\U0010FFFF", true},
	{"long ascii", strings.Repeat("a", 1000), true},
	{"long mixed", strings.Repeat("aé€🎉", 100), true},
	{"lone continuation", "\x80", false},
	{"invalid lead", "\xff", false},
	{"truncated", "\xe2\x82", false},
	{"overlong two byte", "\xc0\xaf", false},
	{"overlong three byte", "\xe0\x80\xaf", false},
	{"surrogate", "\xed\xa0\x80", false},
	{"above max", "\xf4\x90\x80\x80", false},
	{"error after long ascii", strings.Repeat("a", 200) + "\xff", false},
	{"truncated after long ascii", strings.Repeat("a", 127) + "\xf0\x9f\x8e", false},
	{"error in the middle", strings.Repeat("é", 50) + "\xc3\x28" + strings.Repeat("é", 50), false},
}

func TestValidate(t *testing.T) {
	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]byte(tc.input))
			if tc.valid {
				if err != nil {
					t.Fatalf("Validate(%q) = %v, want nil", tc.input, err)
				}
			} else if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate(%q) = %v, want ErrInvalid", tc.input, err)
			}
			if got := Valid([]byte(tc.input)); got != tc.valid {
				t.Errorf("Valid(%q) = %v, want %v", tc.input, got, tc.valid)
			}
			if got := ValidateString(tc.input) == nil; got != tc.valid {
				t.Errorf("ValidateString(%q) valid = %v, want %v", tc.input, got, tc.valid)
			}
		})
	}
}

func TestErrInvalid(t *testing.T) {
	err := Validate([]byte{0xff})
	var utf8Err Utf8Error
	if !errors.As(err, &utf8Err) {
		t.Fatalf("Validate error %T is not a Utf8Error", err)
	}
	if got := err.Error(); got != "invalid utf-8" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidatorPartitions(t *testing.T) {
	sizes := []int{1, 2, 3, 36, 64, 99, 1024}
	for _, tc := range validationCases {
		for _, size := range sizes {
			v := NewValidator()
			input := []byte(tc.input)
			for len(input) > 0 {
				n := min(size, len(input))
				v.Update(input[:n])
				input = input[n:]
			}
			if got := v.Finalize() == nil; got != tc.valid {
				t.Errorf("%s in pieces of %d: valid = %v, want %v", tc.name, size, got, tc.valid)
			}
		}
	}
}

func TestValidatorAsWriter(t *testing.T) {
	input := strings.Repeat("ünïcödé 🎉 ", 40)
	v := NewValidator()
	if _, err := io.Copy(v, iotest.OneByteReader(strings.NewReader(input))); err != nil {
		t.Fatal(err)
	}
	if err := v.Finalize(); err != nil {
		t.Errorf("Finalize() = %v, want nil", err)
	}
}

func TestValidatorReset(t *testing.T) {
	v := NewValidator()
	v.Update([]byte("\xff"))
	if err := v.Finalize(); err == nil {
		t.Fatal("Finalize() = nil for invalid input")
	}

	v.Reset()
	v.Update([]byte("valid again"))
	if err := v.Finalize(); err != nil {
		t.Errorf("Finalize() after Reset = %v, want nil", err)
	}
}

func TestValidatorEmpty(t *testing.T) {
	if err := NewValidator().Finalize(); err != nil {
		t.Errorf("Finalize() without Update = %v, want nil", err)
	}
	if err := NewChunkedValidator().Finalize(nil); err != nil {
		t.Errorf("chunked Finalize(nil) without Update = %v, want nil", err)
	}
}

func TestUseAfterFinalizePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Update", func() {
			v := NewValidator()
			_ = v.Finalize()
			v.Update([]byte("a"))
		}},
		{"Finalize", func() {
			v := NewValidator()
			_ = v.Finalize()
			_ = v.Finalize()
		}},
		{"UpdateFromChunks", func() {
			v := NewChunkedValidator()
			_ = v.Finalize(nil)
			v.UpdateFromChunks(make([]byte, ChunkSize))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s after Finalize did not panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}

func TestChunkedValidator(t *testing.T) {
	for _, tc := range validationCases {
		input := []byte(tc.input)
		aligned := len(input) - len(input)%ChunkSize

		v := NewChunkedValidator()
		v.UpdateFromChunks(input[:aligned])
		if got := v.Finalize(input[aligned:]) == nil; got != tc.valid {
			t.Errorf("%s: valid = %v, want %v", tc.name, got, tc.valid)
		}
	}
}

func TestChunkedValidatorSplitAcrossChunks(t *testing.T) {
	input := append(bytes.Repeat([]byte("a"), ChunkSize-1), "🎉"...)
	input = append(input, bytes.Repeat([]byte("b"), ChunkSize-3)...)

	v := NewChunkedValidator()
	v.UpdateFromChunks(input[:ChunkSize])
	v.UpdateFromChunks(input[ChunkSize : 2*ChunkSize])
	if err := v.Finalize(nil); err != nil {
		t.Errorf("Finalize(nil) = %v, want nil", err)
	}

	v.Reset()
	v.UpdateFromChunks(input[:ChunkSize])
	if err := v.Finalize(nil); err == nil {
		t.Error("Finalize(nil) with a sequence cut at the chunk end = nil, want error")
	}
}

func TestChunkedValidatorMisaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("UpdateFromChunks with 65 bytes did not panic")
		}
	}()
	NewChunkedValidator().UpdateFromChunks(make([]byte, ChunkSize+1))
}

func FuzzValidate(f *testing.F) {
	for _, tc := range validationCases {
		f.Add([]byte(tc.input))
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		want := utf8.Valid(input)
		if got := Valid(input); got != want {
			t.Fatalf("Valid(%x) = %v, want %v", input, got, want)
		}

		v := NewValidator()
		for i := 0; i < len(input); i += 5 {
			v.Update(input[i:min(i+5, len(input))])
		}
		if got := v.Finalize() == nil; got != want {
			t.Fatalf("streamed valid(%x) = %v, want %v", input, got, want)
		}
	})
}

func BenchmarkValidate(b *testing.B) {
	inputs := map[string][]byte{
		"ascii": bytes.Repeat([]byte("a"), 64<<10),
		"mixed": bytes.Repeat([]byte("aé€🎉"), 6<<10),
	}
	for name, input := range inputs {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				if err := Validate(input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
