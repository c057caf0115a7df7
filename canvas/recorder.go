package canvas

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, Radius float64
	Color        Color
}

// Line is a recorded StrokeLine call.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          Color
}

// Recorder is an in-memory Surface. It keeps the draw calls of the current
// frame (reset by Clear) plus running totals, and is used by the headless
// host and by tests.
type Recorder struct {
	width, height int
	err           error

	Circles []Circle
	Lines   []Line

	Clears       int
	TotalCircles int
	TotalLines   int
}

// NewRecorder creates a recorder with the given pixel dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Size returns the recorder dimensions.
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// SetSize changes the recorder dimensions, as a viewport resize would.
func (r *Recorder) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Fail makes Available report err; nil restores availability.
func (r *Recorder) Fail(err error) {
	r.err = err
}

// Available implements Prober.
func (r *Recorder) Available() error {
	return r.err
}

// Clear drops the draw calls of the previous frame.
func (r *Recorder) Clear() {
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
	r.Clears++
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, Radius: radius, Color: c})
	r.TotalCircles++
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c Color) {
	r.Lines = append(r.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
	r.TotalLines++
}
