package position

import "testing"

func TestSpanStartEndCoincideAtSameLine(t *testing.T) {
	pos := Position{Line: 10, Column: 1}
	span := Span{Start: pos, End: pos}

	if span.Start.Line != 10 || span.End.Line != 10 {
		t.Errorf("Span = %+v, want Start and End both at line 10", span)
	}
	if span.Start.Column != 1 {
		t.Errorf("Span.Start.Column = %d, want 1", span.Start.Column)
	}
}

func TestSpanZeroValue(t *testing.T) {
	var span Span
	if span.Start.Line != 0 || span.End.Line != 0 {
		t.Errorf("zero Span = %+v, want both lines 0", span)
	}
}
