package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/filter"
	"github.com/gogpu/imgops/transform"
)

func TestApplyNoStepsCopies(t *testing.T) {
	p := NewProcessor()
	defer p.Close()
	src := createDistinctCanvas(4, 3)

	out, err := p.Apply(context.Background(), src, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !out.Equal(src) {
		t.Error("Apply() with no steps changed the image")
	}
	out.SetPixel(0, 0, imgops.Black)
	if src.Pixel(0, 0) == imgops.Black {
		t.Error("Apply() returned the source canvas itself")
	}
}

func TestApplyFitsTransformCanvas(t *testing.T) {
	tests := []struct {
		step         string
		wantW, wantH int
	}{
		{"translate:2,3", 6, 6},
		{"translate:-1,0", 3, 3},
		{"scale:2", 7, 5},
		{"flip:v", 4, 4},
		{"flip:h", 5, 3},
		{"rotate:90", 5, 8},
	}

	p := NewProcessor()
	defer p.Close()
	src := createDistinctCanvas(4, 3)

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			out, err := p.Apply(context.Background(), src, mustParseSteps(t, tt.step))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if out.Width() != tt.wantW || out.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", out.Width(), out.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestApplyTransformMatchesPackage(t *testing.T) {
	src := createDistinctCanvas(5, 4)
	p := NewProcessor(WithCanvasSize(12, 12))
	defer p.Close()

	out, err := p.Apply(context.Background(), src, mustParseSteps(t, "rotate:90"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := imgops.NewCanvas(12, 12)
	transform.Rotate(src, want, 90)
	if !out.Equal(want) {
		t.Error("rotate step differs from transform.Rotate")
	}
}

func TestApplyChainsFilters(t *testing.T) {
	src := createDistinctCanvas(8, 8)
	p := NewProcessor(WithFilterWorkers(3))
	defer p.Close()

	out, err := p.Apply(context.Background(), src, mustParseSteps(t, "erode", "erode", "dilate"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	k := filter.FlatStructuringKernel()
	a := imgops.NewCanvas(8, 8)
	b := imgops.NewCanvas(8, 8)
	want := imgops.NewCanvas(8, 8)
	filter.Erode(src, a, k)
	filter.Erode(a, b, k)
	filter.Dilate(b, want, k)

	if !out.Equal(want) {
		t.Error("erode, erode, dilate chain differs from direct filter calls")
	}
}

func TestApplyMorphOffsets(t *testing.T) {
	src := imgops.NewCanvas(3, 3)
	src.Fill(imgops.GrayPixel(100))
	p := NewProcessor()
	defer p.Close()

	out, err := p.Apply(context.Background(), src, mustParseSteps(t, "dilate:20"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Pixel(1, 1); got != imgops.GrayPixel(120) {
		t.Errorf("center = %v, want gray 120", got)
	}
	if got := out.Pixel(0, 0); got != imgops.White {
		t.Errorf("border = %v, want White", got)
	}
}

func TestApplyCollisionPolicy(t *testing.T) {
	src := createDistinctCanvas(4, 4)

	for _, policy := range []transform.CollisionPolicy{transform.LastWins, transform.FirstWins} {
		t.Run(policy.String(), func(t *testing.T) {
			p := NewProcessor(WithCollisionPolicy(policy))
			defer p.Close()

			out, err := p.Apply(context.Background(), src, mustParseSteps(t, "scale:0.5"))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			want := imgops.NewCanvas(out.Width(), out.Height())
			transform.Scale(src, want, 0.5, 0.5, transform.WithCollisionPolicy(policy))
			if !out.Equal(want) {
				t.Error("scale step ignored the collision policy")
			}
		})
	}
}

func TestApplyRejectsInvalidSteps(t *testing.T) {
	p := NewProcessor()
	defer p.Close()
	src := createDistinctCanvas(3, 3)

	_, err := p.Apply(context.Background(), src, []Step{{Op: "median"}, {Op: "blur"}})
	if !errors.Is(err, ErrUnknownOp) {
		t.Errorf("Apply() error = %v, want ErrUnknownOp", err)
	}
}

func TestApplyCanvasTooLarge(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		step string
	}{
		{"fitted", nil, "scale:100000"},
		{"fitted beyond int range", nil, "scale:1e19"},
		{"fitted one huge axis", nil, "scale:1e300,1"},
		{"fixed", []Option{WithCanvasSize(100000, 100000)}, "rotate:90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(tt.opts...)
			defer p.Close()

			out, err := p.Apply(context.Background(), createDistinctCanvas(4, 4), mustParseSteps(t, tt.step))
			if !errors.Is(err, ErrCanvasTooLarge) {
				t.Errorf("Apply() = %v, %v, want ErrCanvasTooLarge", out, err)
			}
		})
	}
}

func TestApplyOffCanvas(t *testing.T) {
	p := NewProcessor()
	defer p.Close()

	for _, step := range []string{"translate:-10,0", "translate:0,-5"} {
		_, err := p.Apply(context.Background(), createDistinctCanvas(4, 4), mustParseSteps(t, step))
		if !errors.Is(err, ErrEmptyCanvas) {
			t.Errorf("%s: Apply() error = %v, want ErrEmptyCanvas", step, err)
		}
	}
}

func TestApplyEmptySourceFits(t *testing.T) {
	p := NewProcessor()
	defer p.Close()

	out, err := p.Apply(context.Background(), imgops.NewCanvas(0, 0), mustParseSteps(t, "rotate:90"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if out.Width() != 0 || out.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", out.Width(), out.Height())
	}
}

func TestApplyCancelled(t *testing.T) {
	p := NewProcessor()
	defer p.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Apply(ctx, createDistinctCanvas(3, 3), mustParseSteps(t, "median"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Apply() error = %v, want context.Canceled", err)
	}
}

func TestApplyMorphOffsetsRowMajor(t *testing.T) {
	src := imgops.NewCanvas(3, 3)
	src.Fill(imgops.Black)
	src.SetPixel(1, 0, imgops.GrayPixel(200))
	p := NewProcessor()
	defer p.Close()

	// Only the second offset (row dy=-1, column dx=0) lets a value through.
	out, err := p.Apply(context.Background(), src,
		mustParseSteps(t, "dilate:-255,0,-255,-255,-255,-255,-255,-255,-255"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Pixel(1, 1); got != imgops.GrayPixel(200) {
		t.Errorf("center = %v, want gray 200 from the pixel above", got)
	}
}
