package surface

type OpKind int

const (
	OpClear OpKind = iota
	OpGradient
	OpLine
	OpCircle
	OpDisc
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpGradient:
		return "gradient"
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	case OpDisc:
		return "disc"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive. Coordinates are in device space, i.e. after
// the transform that was current when the primitive was issued.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	R              float64
	Stroke         Stroke
	Fill           Color
	Depth          int // transform stack depth at the time of the call
}

// Recorder is a surface that keeps every primitive instead of drawing it.
type Recorder struct {
	Stack
	w, h int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{Stack: NewStack(Identity()), w: w, h: h}
}

func (r *Recorder) Size() (int, int) { return r.w, r.h }

func (r *Recorder) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidSize
	}
	r.w, r.h = w, h
	return nil
}

func (r *Recorder) Clear() { r.add(Op{Kind: OpClear}) }

func (r *Recorder) FillGradient(g Gradient) {
	r.add(Op{Kind: OpGradient, X1: g.X0, Y1: g.Y0, X2: g.X1, Y2: g.Y1, Fill: g.At(0)})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, st Stroke) {
	ax, ay := r.Project(x1, y1)
	bx, by := r.Project(x2, y2)
	r.add(Op{Kind: OpLine, X1: ax, Y1: ay, X2: bx, Y2: by, Stroke: st})
}

func (r *Recorder) StrokeCircle(x, y, radius float64, st Stroke) {
	cx, cy := r.Project(x, y)
	r.add(Op{Kind: OpCircle, X1: cx, Y1: cy, R: r.Length(radius), Stroke: st})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	cx, cy := r.Project(x, y)
	r.add(Op{Kind: OpDisc, X1: cx, Y1: cy, R: r.Length(radius), Fill: c})
}

func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of one kind, in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops recorded ops and the transform stack.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Stack.Reset()
}

func (r *Recorder) add(op Op) {
	op.Depth = r.Depth()
	r.Ops = append(r.Ops, op)
}
