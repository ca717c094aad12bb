package glyphboard

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExportDefaultsOmitted(t *testing.T) {
	b := NewBoard()
	b.AddSprite("★", 0, 0)

	got := string(b.Export())
	want := `[{"e":"★"}]`
	if got != want {
		t.Fatalf("export = %s, want %s", got, want)
	}
}

func TestExportRounding(t *testing.T) {
	b := NewBoard()
	spr := b.AddSprite("★", 1.23456, -7.891)
	spr.Rotation = 45.67
	spr.ScaleX = 1.23456
	spr.ScaleY = 1.23456

	got := string(b.Export())
	for _, frag := range []string{`"x":1.23`, `"y":-7.89`, `"r":45.7`, `"s":1.2346`} {
		if !strings.Contains(got, frag) {
			t.Errorf("export %s missing %s", got, frag)
		}
	}
}

func TestExportUniformVersusPerAxisScale(t *testing.T) {
	b := NewBoard()
	uni := b.AddSprite("★", 0, 0)
	uni.ScaleX, uni.ScaleY = 2, 2
	mixed := b.AddSprite("♥", 0, 0)
	mixed.ScaleX, mixed.ScaleY = 2, 1
	tall := b.AddSprite("☀", 0, 0)
	tall.ScaleX, tall.ScaleY = 1, 3

	var docs []map[string]any
	if err := json.Unmarshal(b.Export(), &docs); err != nil {
		t.Fatal(err)
	}

	u := docs[0]
	if u["s"] != 2.0 || u["sx"] != nil || u["sy"] != nil {
		t.Errorf("uniform sprite = %v, want s only", u)
	}
	m := docs[1]
	if m["sx"] != 2.0 || m["s"] != nil || m["sy"] != nil {
		t.Errorf("mixed sprite = %v, want sx only", m)
	}
	ta := docs[2]
	if ta["sy"] != 3.0 || ta["s"] != nil || ta["sx"] != nil {
		t.Errorf("tall sprite = %v, want sy only", ta)
	}
}

func TestExportBackToFrontOrder(t *testing.T) {
	b := NewBoard()
	back := b.AddSprite("★", 0, 0)
	b.AddSprite("♥", 0, 0)
	b.SendToBack(back.ID) // already at back; reorder front sprite instead
	b.BringToFront(back.ID)

	var docs []map[string]any
	if err := json.Unmarshal(b.Export(), &docs); err != nil {
		t.Fatal(err)
	}
	if docs[0]["e"] != "♥" || docs[1]["e"] != "★" {
		t.Errorf("order = %v,%v, want back-to-front", docs[0]["e"], docs[1]["e"])
	}
}

func TestImportRoundTrip(t *testing.T) {
	b := NewBoard()
	spr := b.AddSprite("★", 12.5, -3.25)
	spr.Rotation = 90.5
	spr.ScaleX, spr.ScaleY = 1.5, 0.75
	data := b.Export()

	dst := NewBoard()
	if err := dst.Import(data); err != nil {
		t.Fatal(err)
	}
	got := dst.Sprites()[0]
	if got.Content != "★" {
		t.Errorf("content = %q", got.Content)
	}
	assertNear(t, "x", got.X, 12.5)
	assertNear(t, "y", got.Y, -3.25)
	assertNear(t, "rotation", got.Rotation, 90.5)
	assertNear(t, "scaleX", got.ScaleX, 1.5)
	assertNear(t, "scaleY", got.ScaleY, 0.75)
}

func TestImportGeneratesFreshIdentity(t *testing.T) {
	b := NewBoard()
	if err := b.Import([]byte(`[{"e":"★"},{"e":"♥"},{"e":"☀"}]`)); err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for i, spr := range b.Sprites() {
		if spr.ID == "" || seen[spr.ID] {
			t.Fatalf("sprite %d id %q not unique", i, spr.ID)
		}
		seen[spr.ID] = true
		if spr.ZIndex != i {
			t.Errorf("sprite %d zindex = %d", i, spr.ZIndex)
		}
	}
	if b.Selected() != nil {
		t.Error("import should clear selection")
	}
}

func TestImportLegacySchema(t *testing.T) {
	doc := `[{"emoji":"★","x":5,"y":6,"rotation":30,"scaleX":2,"scaleY":3}]`
	b := NewBoard()
	if err := b.Import([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	spr := b.Sprites()[0]
	if spr.Content != "★" {
		t.Errorf("content = %q", spr.Content)
	}
	assertNear(t, "x", spr.X, 5)
	assertNear(t, "rotation", spr.Rotation, 30)
	assertNear(t, "scaleX", spr.ScaleX, 2)
	assertNear(t, "scaleY", spr.ScaleY, 3)
}

func TestImportUniformThenPerAxisOverride(t *testing.T) {
	b := NewBoard()
	if err := b.Import([]byte(`[{"e":"★","s":2,"sy":5}]`)); err != nil {
		t.Fatal(err)
	}
	spr := b.Sprites()[0]
	assertNear(t, "scaleX from s", spr.ScaleX, 2)
	assertNear(t, "scaleY overridden", spr.ScaleY, 5)
}

func TestImportCompactKeysWin(t *testing.T) {
	doc := `[{"e":"★","emoji":"♥","r":10,"rotation":99}]`
	b := NewBoard()
	if err := b.Import([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	spr := b.Sprites()[0]
	if spr.Content != "★" {
		t.Errorf("content = %q, compact key should win", spr.Content)
	}
	assertNear(t, "rotation", spr.Rotation, 10)
}

func TestImportRejectsBadDocuments(t *testing.T) {
	b := NewBoard()
	keep := b.AddSprite("★", 1, 1)

	bad := []string{
		`{`,
		`{"e":"★"}`,  // object, not array
		`[{"x":5}]`,  // no content
		`[{"e":""}]`, // empty content
		`[{"e":"★"},{"y":1}]`,
	}
	for _, doc := range bad {
		if err := b.Import([]byte(doc)); err == nil {
			t.Errorf("Import(%s) = nil error", doc)
		}
	}
	if b.NumSprites() != 1 || b.Sprites()[0] != keep {
		t.Error("failed import must leave the board unchanged")
	}
}
