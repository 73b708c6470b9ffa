package format

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := map[string]Format{
		"png":    PNG,
		"PNG":    PNG,
		".jpg":   JPG,
		" Jpeg ": JPEG,
		"WEBP":   WEBP,
		"tiff":   TIFF,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "avif", "tif", "jxl"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Parse(%q): got %v, want ErrUnsupported", in, err)
		}
	}
}

func TestEncoderID(t *testing.T) {
	if got := JPG.EncoderID(); got != "JPEG" {
		t.Errorf("jpg encoder: got %q", got)
	}
	for _, f := range All() {
		want := Names()[indexOf(f)]
		if got := f.EncoderID(); got != want {
			t.Errorf("%s encoder: got %q, want %q", f, got, want)
		}
	}
}

func TestFlattenSet(t *testing.T) {
	want := map[Format]bool{JPEG: true, JPG: true, BMP: true}
	for f := range table {
		if f.Flatten() != want[f] {
			t.Errorf("%s: Flatten = %v", f, f.Flatten())
		}
	}
}

func TestTableIsExhaustive(t *testing.T) {
	if len(All()) != 8 {
		t.Fatalf("canonical formats: got %d", len(All()))
	}
	for _, f := range All() {
		spec, ok := Lookup(f)
		if !ok {
			t.Errorf("%s missing from table", f)
		}
		if spec.Alpha && spec.Flatten {
			t.Errorf("%s: cannot both keep and flatten alpha", f)
		}
	}
	if _, ok := Lookup(JPG); !ok {
		t.Error("jpg alias missing from table")
	}
}

func indexOf(f Format) int {
	for i, c := range canonical {
		if c == f {
			return i
		}
	}
	return -1
}
