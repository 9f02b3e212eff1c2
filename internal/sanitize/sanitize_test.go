package sanitize

import "testing"

// ---------------------------------------------------------------------------
// Attribute context
// ---------------------------------------------------------------------------

func TestAttribute_EscapesMarkupCharacters(t *testing.T) {
	got := Attribute(`<script src="/x">'`)
	want := "&lt;script src=&quot;&#x2F;x&quot;&gt;&#x27;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttribute_TrimsSurroundingWhitespace(t *testing.T) {
	if got := Attribute("  Jane Doe \n"); got != "Jane Doe" {
		t.Errorf("got %q, want %q", got, "Jane Doe")
	}
}

// TestAttribute_LeavesAmpersandAlone verifies the attribute set does not
// touch &, matching the documented character set.
func TestAttribute_LeavesAmpersandAlone(t *testing.T) {
	if got := Attribute("Tom & Jerry"); got != "Tom & Jerry" {
		t.Errorf("got %q, want %q", got, "Tom & Jerry")
	}
}

// ---------------------------------------------------------------------------
// Text context
// ---------------------------------------------------------------------------

func TestText_EscapesMarkupCharacters(t *testing.T) {
	got := Text(`<b>"hi"</b> & 'bye'`)
	want := "&lt;b&gt;&quot;hi&quot;&lt;/b&gt; &amp; &#039;bye&#039;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestText_PreservesWhitespace(t *testing.T) {
	in := "  line one\n\nline two  "
	if got := Text(in); got != in {
		t.Errorf("got %q, want input unchanged %q", got, in)
	}
}

// TestText_NoDoubleEscape verifies entities produced by the < > " '
// replacements are not re-escaped through the & rule.
func TestText_NoDoubleEscape(t *testing.T) {
	if got := Text("<"); got != "&lt;" {
		t.Errorf("got %q, want %q", got, "&lt;")
	}
	// A literal pre-existing entity is escaped exactly once at its &.
	if got := Text("&lt;"); got != "&amp;lt;" {
		t.Errorf("got %q, want %q", got, "&amp;lt;")
	}
}

// TestText_SlashUntouched verifies the text set does not escape /, matching
// the documented character set.
func TestText_SlashUntouched(t *testing.T) {
	if got := Text("a/b"); got != "a/b" {
		t.Errorf("got %q, want %q", got, "a/b")
	}
}

func TestEscape_ContextSelectsCharacterSet(t *testing.T) {
	if got := Escape("/", ContextAttribute); got != "&#x2F;" {
		t.Errorf("attribute context: got %q, want %q", got, "&#x2F;")
	}
	if got := Escape("&", ContextText); got != "&amp;" {
		t.Errorf("text context: got %q, want %q", got, "&amp;")
	}
}
