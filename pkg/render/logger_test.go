package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLoggerFrame(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	mesh := models.Cube()
	mesh.Translation = math3d.V3(0, 0, 5)
	if _, err := NewPipeline().RenderFrame(NewFramebuffer(16, 16), mesh, DefaultFrameConfig(16, 16)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "drawn=2") {
		t.Errorf("expected frame debug line, got: %s", out)
	}
}

func TestSetLoggerPropagates(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := models.ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "parsed obj") {
		t.Errorf("loader should log through the render logger, got: %s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) || models.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should silence both packages")
	}
}
