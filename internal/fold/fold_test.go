package fold

import "testing"

func TestApplyCaseInsensitive(t *testing.T) {
	got := Apply("FooBar", Flags{CaseInsensitive: true})
	want := Apply("foobar", Flags{CaseInsensitive: true})
	if got != want {
		t.Errorf("Apply(FooBar) = %q, Apply(foobar) = %q, want equal", got, want)
	}
}

func TestApplyDiacritics(t *testing.T) {
	got := Apply("café", Flags{FoldDiacritics: true})
	if got != "cafe" {
		t.Errorf("Apply(café) = %q, want %q", got, "cafe")
	}
}

func TestWholeEqual(t *testing.T) {
	f := Flags{CaseInsensitive: true, FoldDiacritics: true}
	if !WholeEqual("CAFÉ", "cafe", f) {
		t.Error("expected CAFÉ to equal cafe under case+diacritic folding")
	}
	if WholeEqual("CAFÉ", "cafeteria", f) {
		t.Error("did not expect CAFÉ to equal cafeteria")
	}
}

func TestFindReturnsOriginalOffsets(t *testing.T) {
	haystack := "the Café Noir"
	offset, length, ok := Find(haystack, "cafe", Flags{CaseInsensitive: true, FoldDiacritics: true})
	if !ok {
		t.Fatal("expected to find 'cafe' in haystack")
	}
	got := haystack[offset : offset+length]
	if got != "Café" {
		t.Errorf("Find located %q, want %q", got, "Café")
	}
}

func TestFindNotFound(t *testing.T) {
	_, _, ok := Find("hello world", "xyz", Flags{})
	if ok {
		t.Error("expected no match")
	}
}

func TestFindEmptyNeedle(t *testing.T) {
	_, _, ok := Find("hello", "", Flags{})
	if ok {
		t.Error("empty needle must never match")
	}
}

func TestCollateEqual(t *testing.T) {
	if !CollateEqual("Hello", "hello", true) {
		t.Error("expected case-insensitive collation to treat Hello == hello")
	}
	if CollateEqual("Hello", "hello", false) {
		t.Error("expected case-sensitive collation to treat Hello != hello")
	}
}
