package maze

import "testing"

func TestLabelRoundTrip(t *testing.T) {
	for i := 0; i < NodeCount; i++ {
		n := Node(i)
		parsed, err := ParseNode(n.Label())
		if err != nil {
			t.Fatalf("ParseNode(%q): %v", string(n.Label()), err)
		}
		if parsed != n {
			t.Errorf("ParseNode(%q) = %v, want %v", string(n.Label()), parsed, n)
		}
	}
}

func TestParseNodeUnknown(t *testing.T) {
	if _, err := ParseNode('Z'); err == nil {
		t.Error("ParseNode('Z') should fail")
	}
	if _, err := ParseNode('e'); err == nil {
		t.Error("labels are case-sensitive, ParseNode('e') should fail")
	}
}

func TestNodeString(t *testing.T) {
	if got := Food.String(); got != "Food" {
		t.Errorf("Food.String() = %q", got)
	}
	if got := Node(99).String(); got != "Node(99)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}
