package tensor

import (
	"testing"
)

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{1, 2, 2, 2}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 8 {
		t.Errorf("NumElements = %d, want 8", raw.NumElements())
	}
	if raw.ByteSize() != 32 {
		t.Errorf("ByteSize = %d, want 32", raw.ByteSize())
	}
	for i, v := range raw.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{1, 0, 2}, Float32); err == nil {
		t.Error("expected error for zero dimension")
	}
}

func TestNewRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Int32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", raw.NumElements())
	}
}

func TestRawTensorAsInt32(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Int32)
	data := raw.AsInt32()

	if len(data) != 6 {
		t.Errorf("AsInt32 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsInt32()[0] != 42 {
		t.Error("AsInt32 should return zero-copy slice")
	}
}

func TestRawTensorAsBool(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Bool)
	data := raw.AsBool()

	if len(data) != 4 {
		t.Errorf("AsBool length = %d, want 4", len(data))
	}

	data[0] = true
	if !raw.AsBool()[0] {
		t.Error("AsBool should return zero-copy slice")
	}
}

func TestRawTensorWrongDTypePanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Int32)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on int32 tensor should panic")
		}
	}()
	_ = raw.AsFloat32()
}

func TestRawTensorCloneIsDeep(t *testing.T) {
	raw, _ := FromValues(Shape{2}, Float32, []float64{1, 2})
	clone := raw.Clone()
	clone.AsFloat32()[0] = 99

	if raw.AsFloat32()[0] != 1 {
		t.Errorf("original modified through clone: %v", raw.AsFloat32())
	}
}

func TestRawTensorReshape(t *testing.T) {
	raw, _ := FromValues(Shape{1, 3, 3, 1}, Float32, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	reshaped, err := raw.Reshape(Shape{1, 9})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !reshaped.Shape().Equal(Shape{1, 9}) {
		t.Errorf("shape = %v, want {1, 9}", reshaped.Shape())
	}
	if reshaped.AsFloat32()[8] != 9 {
		t.Errorf("reshaped data = %v", reshaped.AsFloat32())
	}

	if _, err := raw.Reshape(Shape{2, 5}); err == nil {
		t.Error("expected error for element count mismatch")
	}
}

func TestFromValues(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		dtype   DataType
		values  []float64
		wantErr bool
	}{
		{"float32", Shape{2}, Float32, []float64{100, 200}, false},
		{"float16", Shape{2}, Float16, []float64{0.25, 1}, false},
		{"int32", Shape{}, Int32, []float64{1}, false},
		{"int32 fractional", Shape{}, Int32, []float64{1.5}, true},
		{"uint32 negative", Shape{}, Uint32, []float64{-1}, true},
		{"bool", Shape{2}, Bool, []float64{0, 1}, false},
		{"bool invalid", Shape{1}, Bool, []float64{2}, true},
		{"count mismatch", Shape{2, 2}, Float32, []float64{1, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := FromValues(tt.shape, tt.dtype, tt.values)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got tensor %v", raw.Values())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := raw.Values()
			for i := range tt.values {
				if got[i] != tt.values[i] {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.values[i])
				}
			}
		})
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	raw, _ := FromValues(Shape{4}, Float16, []float64{10, 21, 0.25, 246})

	f32 := raw.Float32s()
	want := []float32{10, 21, 0.25, 246}
	for i := range want {
		if f32[i] != want[i] {
			t.Errorf("Float32s()[%d] = %v, want %v", i, f32[i], want[i])
		}
	}

	raw.SetFloat32s([]float32{1, 2, 3, 4})
	if got := raw.Values(); got[3] != 4 {
		t.Errorf("SetFloat32s did not store values: %v", got)
	}
}

func TestScalarInt(t *testing.T) {
	raw, _ := FromValues(Shape{}, Int32, []float64{3})
	v, err := raw.ScalarInt()
	if err != nil || v != 3 {
		t.Errorf("ScalarInt = %d, %v; want 3, nil", v, err)
	}

	vec, _ := FromValues(Shape{2}, Int32, []float64{1, 2})
	if _, err := vec.ScalarInt(); err == nil {
		t.Error("expected error for non-scalar")
	}

	f, _ := FromValues(Shape{}, Float32, []float64{1})
	if _, err := f.ScalarInt(); err == nil {
		t.Error("expected error for float scalar")
	}
}

func TestNewRawTooLarge(t *testing.T) {
	if _, err := NewRaw(Shape{1 << 32, 1 << 32}, Float32); err == nil {
		t.Error("expected error for overflowing shape")
	}
	if _, err := NewRaw(Shape{1 << 31, 1 << 31}, Float32); err == nil {
		t.Error("expected error for byte size overflow")
	}
}
