package style

// Breakpoint is a responsive screen-size bucket. Styles can attach sub-maps
// per breakpoint that only merge in when the window currently falls into
// that bucket.
type Breakpoint uint8

const (
	XS Breakpoint = iota
	SM
	MD
	LG
	XL
	XXL
)

// Breakpoint width thresholds in logical pixels, matching conventional
// responsive design buckets.
const (
	smMinWidth  = 640.0
	mdMinWidth  = 768.0
	lgMinWidth  = 1024.0
	xlMinWidth  = 1280.0
	xxlMinWidth = 1536.0
)

// BreakpointForWidth buckets a logical window width.
func BreakpointForWidth(width float64) Breakpoint {
	switch {
	case width >= xxlMinWidth:
		return XXL
	case width >= xlMinWidth:
		return XL
	case width >= lgMinWidth:
		return LG
	case width >= mdMinWidth:
		return MD
	case width >= smMinWidth:
		return SM
	default:
		return XS
	}
}

// String returns the bucket name.
func (b Breakpoint) String() string {
	switch b {
	case XS:
		return "xs"
	case SM:
		return "sm"
	case MD:
		return "md"
	case LG:
		return "lg"
	case XL:
		return "xl"
	case XXL:
		return "xxl"
	default:
		return "unknown"
	}
}
