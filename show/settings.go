package show

// Settings tunes how bundles are drawn and retired. Durations are in ms.
// VisibleDurationMs bounds both the free-running trail and the time a bundle
// lingers after its last point; the highlight and trail durations only apply
// to fixed-interval playback.
type Settings struct {
	VisibleDurationMs   float64 `yaml:"visibleDurationMs"`
	HighlightDurationMs float64 `yaml:"highlightDurationMs"`
	TrailDurationMs     float64 `yaml:"trailDurationMs"`
	FadeOutSpeed        float64 `yaml:"fadeOutSpeed"`

	TrailWidth    float64 `yaml:"trailWidth"`
	MaxTrailWidth float64 `yaml:"maxTrailWidth"`
	MinTrailWidth float64 `yaml:"minTrailWidth"`
	TrailJitter   float64 `yaml:"trailJitter"`

	SparkAttempts    int     `yaml:"sparkAttempts"`
	MaxSparkDistance float64 `yaml:"maxSparkDistance"`
	SparkRadius      float64 `yaml:"sparkRadius"`
	SparkColour      string  `yaml:"sparkColour"`

	HaloRadius      float64 `yaml:"haloRadius"`
	HaloBlur        float64 `yaml:"haloBlur"`
	HighlightRadius float64 `yaml:"highlightRadius"`
}

// DefaultSettings returns the stock look. The highlight window spans two
// sampling intervals.
func DefaultSettings(intervalMs float64) Settings {
	return Settings{
		VisibleDurationMs:   2000,
		HighlightDurationMs: 2 * intervalMs,
		TrailDurationMs:     2000,
		FadeOutSpeed:        5,

		TrailWidth:    2,
		MaxTrailWidth: 4,
		MinTrailWidth: 1,
		TrailJitter:   1,

		SparkAttempts:    5,
		MaxSparkDistance: 5,
		SparkRadius:      1,
		SparkColour:      "rgb(255, 195, 50)",

		HaloRadius:      25,
		HaloBlur:        3,
		HighlightRadius: 3,
	}
}
