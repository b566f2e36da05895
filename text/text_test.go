package text

import "testing"

func TestWithColorLiftsPlainToFull(t *testing.T) {
	plain := Plain("hello")
	colored := plain.WithColor(NamedColorValue(Red))
	if !colored.isFull() {
		t.Fatal("expected WithColor to lift a plain node to a full node")
	}
	if colored.content.Plain != "hello" {
		t.Fatalf("expected lifted content to preserve rendered text, got %q", colored.content.Plain)
	}
}

func TestPushSequentialOnNonSequential(t *testing.T) {
	a := Plain("a")
	b := Plain("b")
	result := a.PushSequential(b)
	if len(result.sequential) != 3 {
		t.Fatalf("got %d items, want 3", len(result.sequential))
	}
	if result.sequential[0].Plaintext() != "" {
		t.Fatalf("expected leading empty string, got %q", result.sequential[0].Plaintext())
	}
}

func TestPushSequentialOnSequential(t *testing.T) {
	seq := Sequential(Plain("a"), Plain("b"))
	result := seq.PushSequential(Plain("c"))
	if len(result.sequential) != 3 {
		t.Fatalf("got %d items, want 3", len(result.sequential))
	}
}

func TestLegacyRenderEmitsEscapesForTrueFlags(t *testing.T) {
	styled := Plain("hi").WithBolded(true).WithColor(NamedColorValue(Red))
	got := styled.Legacy()
	want := "§c§lhi"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLegacyRenderOmitsFalseFlags(t *testing.T) {
	styled := Plain("hi").WithItalicized(false)
	got := styled.Legacy()
	if got != "hi" {
		t.Fatalf("got %q, want %q (false flags emit no escape)", got, "hi")
	}
}

func TestPlaintextConcatenatesChildren(t *testing.T) {
	parent := FullText(Content{Plain: "a"}).WithChildren(Plain("b"), Plain("c"))
	if got := parent.Plaintext(); got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}
