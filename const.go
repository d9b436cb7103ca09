package pixedit

const (
	minBrightness, maxBrightness = 0.0, 200.0
	minContrast, maxContrast     = 0.0, 200.0
	minSaturation, maxSaturation = 0.0, 200.0
	minBlur, maxBlur             = 0.0, 10.0
	minSharpen, maxSharpen       = 0.0, 100.0
	minHue, maxHue               = -180.0, 180.0
	minSepia, maxSepia           = 0.0, 100.0
	minGrayscale, maxGrayscale   = 0.0, 100.0
)

const (
	defaultMaxPixels    = 64 << 20 // 64 MP
	defaultHistoryLimit = 0        // unlimited
	contrastMidpoint    = 128.0
)

const (
	originalLabel  = "original"
	downloadPrefix = "edited-image-"
	downloadExt    = ".png"
)

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)
