package tvision

import (
	"math/rand"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		index     uint8
		view      Palette
		container Palette
		want      Attr
	}{
		{"button normal in dialog", 1, ButtonPalette, GrayDialogPalette, AttrFromByte(0x20)},
		{"dialog passive frame", 1, FramePalette, GrayDialogPalette, AttrFromByte(0x70)},
		{"blue window active frame", 3, FramePalette, BlueWindowPalette, AttrFromByte(0x1F)},
		{"status line text", 1, StatusLinePalette, nil, AttrFromByte(0x70)},
		{"background", 1, BackgroundPalette, nil, AttrFromByte(0x71)},
		{"no view palette", 2, nil, nil, AttrFromByte(0x70)},
		{"view index past end passes through", 9, LabelPalette, nil, AttrFromByte(0x1F)},
		{"zero index", 0, ButtonPalette, GrayDialogPalette, FallbackAttr},
		{"past application palette", 200, nil, nil, FallbackAttr},
		{"zero entry passes through", 2, Palette{5, 0}, nil, AttrFromByte(0x70)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.index, tt.view, tt.container, AppColor); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	randPalette := func() Palette {
		if rng.Intn(4) == 0 {
			return nil
		}
		p := make(Palette, rng.Intn(40))
		for i := range p {
			p[i] = uint8(rng.Intn(256))
		}
		return p
	}
	for i := 0; i < 2000; i++ {
		view, container := randPalette(), randPalette()
		app := AppPalette(randPalette())
		idx := uint8(rng.Intn(256))
		got := Resolve(idx, view, container, app)

		final := container.Map(view.Map(idx))
		if final == 0 || int(final) > len(app) {
			if got != FallbackAttr {
				t.Fatalf("unresolvable %d resolved to %v", final, got)
			}
			continue
		}
		if got != AttrFromByte(app[final-1]) {
			t.Fatalf("Resolve(%d) = %v, want app entry %d", idx, got, final)
		}
	}
}

func TestAppPaletteWith(t *testing.T) {
	p := AppColor.With(map[int]uint8{1: 0x4F, 999: 0x11})
	if p.Attr(1) != AttrFromByte(0x4F) {
		t.Errorf("override not applied: %v", p.Attr(1))
	}
	if AppColor.Attr(1) != AttrFromByte(0x71) {
		t.Errorf("With must not modify the receiver")
	}
	if len(p) != len(AppColor) {
		t.Errorf("len = %d", len(p))
	}
}

func TestContainerPaletteNesting(t *testing.T) {
	// a button in a group inside a dialog resolves like a direct child
	s := NewScreen(30, 10)
	d := NewDialog(RectAt(0, 0, 30, 10), "")
	inner := NewGroup(RectAt(1, 1, 20, 5))
	direct := NewButton(RectAt(22, 1, 6, 2), "A", CmOK, 0)
	nested := NewButton(RectAt(0, 0, 6, 2), "B", CmOK, 0)
	direct.SetOptions(OptSelectable, false)
	nested.SetOptions(OptSelectable, false)
	inner.Insert(nested)
	d.Insert(inner)
	d.Insert(direct)
	c := NewCanvas(s, AppColor)
	c.DrawView(d, false)
	if s.Get(23, 1).Attr != s.Get(1+1, 1).Attr {
		t.Errorf("nested %v and direct %v buttons differ", s.Get(2, 1).Attr, s.Get(23, 1).Attr)
	}
}
