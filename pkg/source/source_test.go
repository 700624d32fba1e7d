package source

import (
	"errors"
	"testing"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/pkg/encoder"
)

func TestDecodeRange(t *testing.T) {
	s := Source{Kind: KindControlChange, Channel: 0, Number: 7, Character: CharacterRange}

	tests := []struct {
		msg  midi.Message
		want float64
	}{
		{midi.ControlChange(0, 7, 0), 0},
		{midi.ControlChange(0, 7, 127), 1},
		{midi.ControlChange(0, 7, 64), 64.0 / 127},
	}
	for _, tt := range tests {
		got, err := s.Decode(tt.msg)
		if err != nil {
			t.Fatalf("Decode(%v) error = %v", tt.msg, err)
		}
		u, ok := got.Absolute()
		if !ok || u.Float64() != tt.want {
			t.Errorf("Decode(%v) = %v, want Absolute(%v)", tt.msg, got, tt.want)
		}
	}
}

func TestDecodeNotMatched(t *testing.T) {
	s := Source{Kind: KindControlChange, Channel: 2, Number: 7, Character: CharacterRange}

	for _, msg := range []midi.Message{
		midi.ControlChange(1, 7, 10),
		midi.ControlChange(2, 8, 10),
		midi.NoteOn(2, 7, 100),
		midi.Pitchbend(2, 100),
	} {
		if _, err := s.Decode(msg); !errors.Is(err, ErrNotMatched) {
			t.Errorf("Decode(%v) error = %v, want %v", msg, err, ErrNotMatched)
		}
	}
}

func TestDecodeButton(t *testing.T) {
	note := Source{Kind: KindNote, Channel: 9, Number: 36, Character: CharacterButton}

	tests := []struct {
		msg  midi.Message
		want float64
	}{
		{midi.NoteOn(9, 36, 20), 1},
		{midi.NoteOn(9, 36, 0), 0},
		{midi.NoteOff(9, 36), 0},
	}
	for _, tt := range tests {
		got, err := note.Decode(tt.msg)
		if err != nil {
			t.Fatalf("Decode(%v) error = %v", tt.msg, err)
		}
		if u, _ := got.Absolute(); u.Float64() != tt.want {
			t.Errorf("Decode(%v) = %v, want Absolute(%v)", tt.msg, got, tt.want)
		}
	}

	cc := Source{Kind: KindControlChange, Number: 64, Character: CharacterButton}
	got, err := cc.Decode(midi.ControlChange(0, 64, 1))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if u, _ := got.Absolute(); u.Float64() != 1 {
		t.Errorf("Decode(CC 64 1) = %v, want Absolute(1)", got)
	}
}

func TestDecodeEncoder(t *testing.T) {
	tests := []struct {
		character Character
		raw       uint8
		want      int32
		wantErr   error
	}{
		{CharacterEncoder1, 1, 1, nil},
		{CharacterEncoder1, 127, -1, nil},
		{CharacterEncoder1, 0, 0, encoder.ErrNoMovement},
		{CharacterEncoder2, 65, 1, nil},
		{CharacterEncoder2, 63, -1, nil},
		{CharacterEncoder3, 65, -1, nil},
	}
	for _, tt := range tests {
		s := Source{Kind: KindControlChange, Number: 16, Character: tt.character}
		got, err := s.Decode(midi.ControlChange(0, 16, tt.raw))
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%v Decode(%d) error = %v, want %v", tt.character, tt.raw, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v Decode(%d) error = %v", tt.character, tt.raw, err)
		}
		inc, ok := got.Relative()
		if !ok || inc.Get() != tt.want {
			t.Errorf("%v Decode(%d) = %v, want Relative(%d)", tt.character, tt.raw, got, tt.want)
		}
	}
}

func TestFeedback(t *testing.T) {
	cc := Source{Kind: KindControlChange, Channel: 3, Number: 7}
	msg := cc.Feedback(FromSevenBit(100))

	var ch, num, val uint8
	if !msg.GetControlChange(&ch, &num, &val) {
		t.Fatalf("Feedback() = %v, want control change", msg)
	}
	if ch != 3 || num != 7 || val != 100 {
		t.Errorf("Feedback() = %d/%d/%d, want 3/7/100", ch, num, val)
	}

	note := Source{Kind: KindNote, Channel: 0, Number: 60, Character: CharacterButton}
	msg = note.Feedback(FromSevenBit(127))
	if !msg.GetNoteOn(&ch, &num, &val) || val != 127 {
		t.Errorf("Feedback() = %v, want note on with velocity 127", msg)
	}
}

func TestSevenBitRoundTrip(t *testing.T) {
	for v := 0; v <= MaxValue; v++ {
		if got := ToSevenBit(FromSevenBit(uint8(v))); got != uint8(v) {
			t.Errorf("ToSevenBit(FromSevenBit(%d)) = %d", v, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		src     Source
		wantErr bool
	}{
		{"Valid", Source{Kind: KindControlChange, Channel: 15, Number: 127}, false},
		{"BadChannel", Source{Channel: 16}, true},
		{"BadNumber", Source{Number: 128}, true},
		{"EncoderOnNote", Source{Kind: KindNote, Character: CharacterEncoder1}, true},
		{"UnknownCharacter", Source{Character: Character(9)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	c, err := ParseCharacter("encoder-2")
	if err != nil || c != CharacterEncoder2 {
		t.Errorf("ParseCharacter() = %v, %v", c, err)
	}
	if _, err := ParseCharacter("slider"); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("ParseCharacter(slider) error = %v", err)
	}
	k, err := ParseMessageKind("note")
	if err != nil || k != KindNote {
		t.Errorf("ParseMessageKind() = %v, %v", k, err)
	}
	if got := (Source{Kind: KindNote, Channel: 9, Number: 36, Character: CharacterButton}).String(); got != "NOTE 10/36 BUTTON" {
		t.Errorf("String() = %q", got)
	}
}

