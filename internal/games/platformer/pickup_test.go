package platformer

import (
	"testing"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

func TestNewTokenBoundsFromRadius(t *testing.T) {
	tok := NewToken(core.Vec2{X: 230, Y: 410}, 10)

	if got, want := tok.Bounds(), core.NewBounds(230, 410, 20, 20); got != want {
		t.Errorf("bounds = %+v, expected %+v", got, want)
	}
	if got := tok.Center(); got != (core.Vec2{X: 240, Y: 420}) {
		t.Errorf("center = %+v, expected (240, 420)", got)
	}
	if tok.Radius() != 10 {
		t.Errorf("radius = %v, expected 10", tok.Radius())
	}
	if tok.Collected() {
		t.Error("new token should not be collected")
	}
}

func TestCollectTokensOnce(t *testing.T) {
	tokens := []Token{NewToken(core.Vec2{X: 50, Y: 400}, 10)}
	body := core.NewBounds(50, 400, 30, 30)

	first := CollectTokens(body, tokens)
	if len(first) != 1 || first[0] != 0 {
		t.Fatalf("first pass collected %v, expected [0]", first)
	}
	if !tokens[0].Collected() {
		t.Error("token should be marked collected")
	}

	if second := CollectTokens(body, tokens); len(second) != 0 {
		t.Errorf("second pass collected %v, expected nothing", second)
	}
}

func TestCollectTokensInOrder(t *testing.T) {
	tokens := []Token{
		NewToken(core.Vec2{X: 0, Y: 0}, 10),     // far away
		NewToken(core.Vec2{X: 105, Y: 105}, 10), // inside
		NewToken(core.Vec2{X: 130, Y: 100}, 10), // touching right edge only
		NewToken(core.Vec2{X: 90, Y: 90}, 10),   // overlapping corner
	}
	body := core.NewBounds(100, 100, 30, 30)

	got := CollectTokens(body, tokens)

	want := []int{1, 3}
	if len(got) != len(want) {
		t.Fatalf("collected %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collected[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
	if tokens[0].Collected() || tokens[2].Collected() {
		t.Error("non-overlapping tokens should stay uncollected")
	}
}
