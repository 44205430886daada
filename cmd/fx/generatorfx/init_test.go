package generatorfx

import (
	"context"
	"testing"

	"go.uber.org/fx/fxtest"
)

type closeTrackingGenerator struct {
	closed bool
}

func (g *closeTrackingGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func (g *closeTrackingGenerator) Close() error {
	g.closed = true
	return nil
}

func TestGeneratorClosedOnShutdown(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	gen := &closeTrackingGenerator{}
	appendGeneratorShutdown(lc, gen)

	lc.RequireStart().RequireStop()
	if !gen.closed {
		t.Error("expected the generator to be closed when the lifecycle stops")
	}
}
