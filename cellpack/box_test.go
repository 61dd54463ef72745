package cellpack

import "testing"

func TestHBoxNaturalLayout(t *testing.T) {
	box := NewHBox(4)
	box.Pack(PackedImage{Image: fakeImage{width: 10, height: 8}}, false)
	box.Pack(PackedImage{Image: fakeImage{width: 20, height: 12}}, false)

	if w, h := box.Size(); w != 34 || h != 12 {
		t.Fatalf("Size = (%v, %v), want (34, 12)", w, h)
	}

	l := box.Layout(100, 12)
	first := l.elements[0].rect
	second := l.elements[1].rect
	if first.X != 0 || first.Width != 10 {
		t.Errorf("first child rect = %+v", first)
	}
	if second.X != 14 || second.Width != 20 {
		t.Errorf("second child rect = %+v, want x=14 width=20", second)
	}
}

func TestHBoxExpand(t *testing.T) {
	box := NewHBox(0)
	box.Pack(PackedImage{Image: fakeImage{width: 10, height: 8}}, false)
	box.Pack(PackedImage{Image: fakeImage{width: 10, height: 8}}, true)

	l := box.Layout(100, 8)
	second := l.elements[1].rect
	if second.Width != 90 {
		t.Errorf("expanded child width = %v, want 90", second.Width)
	}
	if second.X != 10 {
		t.Errorf("expanded child x = %v, want 10", second.X)
	}
}

func TestHBoxPackSpace(t *testing.T) {
	box := NewHBox(0)
	box.Pack(PackedImage{Image: fakeImage{width: 10, height: 8}}, false)
	box.PackSpace(6)
	box.Pack(PackedImage{Image: fakeImage{width: 10, height: 8}}, false)

	l := box.Layout(50, 8)
	last := l.LastRect()
	if last.X != 16 {
		t.Errorf("child after space at x = %v, want 16", last.X)
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		name         string
		align        Alignment
		wantX, wantY float64
		wantW, wantH float64
	}{
		{
			"centered no scale",
			Alignment{Child: PackedImage{Image: fakeImage{width: 10, height: 10}}, XAlign: 0.5, YAlign: 0.5},
			45, 20, 10, 10,
		},
		{
			"fill both",
			Alignment{Child: PackedImage{Image: fakeImage{width: 10, height: 10}}, XScale: 1, YScale: 1},
			0, 0, 100, 50,
		},
		{
			"bottom right",
			Alignment{Child: PackedImage{Image: fakeImage{width: 10, height: 10}}, XAlign: 1, YAlign: 1},
			90, 40, 10, 10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout()
			tc.align.PackInto(l, 0, 0, 100, 50)
			rect := *l.LastRect()
			want := NewLayoutRect(tc.wantX, tc.wantY, tc.wantW, tc.wantH)
			if rect != want {
				t.Errorf("packed rect = %+v, want %+v", rect, want)
			}
		})
	}
}

func TestAlignmentMinWidth(t *testing.T) {
	a := Alignment{
		Child:    PackedImage{Image: fakeImage{width: 10, height: 10}},
		MinWidth: 25,
	}
	if w, _ := a.Size(); w != 25 {
		t.Errorf("Size width = %v, want min width 25", w)
	}
}

func TestHotspotPacker(t *testing.T) {
	box := NewHBox(0)
	box.Pack(Hotspot{Name: "eject", Child: PackedImage{Image: fakeImage{width: 12, height: 12}}}, false)

	hotspot, _, _, ok := box.FindHotspot(6, 6, 50, 12)
	if !ok || hotspot != "eject" {
		t.Errorf("hotspot = %q ok=%v, want %q", hotspot, ok, "eject")
	}
}

func TestBackgroundMarginAndCallback(t *testing.T) {
	bg := Background{
		Child:  PackedImage{Image: fakeImage{width: 10, height: 10}},
		Margin: [4]float64{1, 5, 1, 5},
		Draw:   nopDraw,
	}

	if w, h := bg.Size(); w != 20 || h != 12 {
		t.Fatalf("Size = (%v, %v), want (20, 12)", w, h)
	}

	l := NewLayout()
	bg.PackInto(l, 0, 0, 20, 12)
	if len(l.elements) != 2 {
		t.Fatalf("expected background + child elements, got %d", len(l.elements))
	}
	background := l.elements[0].rect
	child := l.elements[1].rect
	if background != NewLayoutRect(0, 0, 20, 12) {
		t.Errorf("background rect = %+v", background)
	}
	if child.X != 5 || child.Y != 1 {
		t.Errorf("child origin = (%v, %v), want (5, 1)", child.X, child.Y)
	}
}
