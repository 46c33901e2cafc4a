package runid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerate(t *testing.T) {
	id, err := NewGenerator(nil).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewGenerator(nil).Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		id, err := NewGenerator(nil).Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestGeneratorEntropyExhausted(t *testing.T) {
	g := NewGenerator(bytes.NewReader(nil))
	if _, err := g.Generate(); err == nil {
		t.Error("expected error from empty entropy source")
	}
}

func TestEncodeKnownValues(t *testing.T) {
	if got := encode(uuid.UUID{}); got != strings.Repeat("0", Length) {
		t.Errorf("zero UUID encoded as %s", got)
	}

	var max uuid.UUID
	for i := range max {
		max[i] = 0xff
	}
	if got := encode(max); got != "7"+strings.Repeat("z", Length-1) {
		t.Errorf("max UUID encoded as %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h455vb4pex5vsknk084sn02q", false},
		{"too short", "01h455vb4pex5vsknk084sn02", true},
		{"too long", "01h455vb4pex5vsknk084sn02qq", true},
		{"first char too high", "81h455vb4pex5vsknk084sn02q", true},
		{"invalid character", "01h455vb4pex5vsknk084sn0iq", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
