package component

// Spin rotates a node about its own Y axis every frame.
type Spin struct {
	Base float64
	// FollowSlider adds the global rotation speed to Base.
	FollowSlider bool
	Angle        float64
}

var SpinComponent = NewComponent[Spin]()

// Orbit rotates a pivot node about its own Y axis every frame by
// Base plus the global orbit speed.
type Orbit struct {
	Base  float64
	Angle float64
}

var OrbitComponent = NewComponent[Orbit]()

// Speeds holds the two values the UI sliders drive.
type Speeds struct {
	RotationSpeed float64
	OrbitSpeed    float64
	RotationMax   float64
	OrbitMax      float64
	Steps         int
}

var SpeedsComponent = NewComponent[Speeds]()

// Clock counts simulation frames.
type Clock struct {
	Frame uint64
}

var ClockComponent = NewComponent[Clock]()

// MotionTarget selects which increment a script replaces.
type MotionTarget int

const (
	MotionSpin MotionTarget = iota
	MotionOrbit
)

// MotionScript replaces the fixed per-frame increment with a script result.
type MotionScript struct {
	Path   string
	Target MotionTarget
	Failed bool
}

var MotionScriptComponent = NewComponent[MotionScript]()
