package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Config carries all tuning for a pipeline run. It is built once and
// treated as read-only afterwards, so several documents can be processed
// concurrently with different tuning.
type Config struct {
	Host string
	Port string

	// Upload limits
	MaxUploadBytes int64

	// Heading detection thresholds
	HeadingMinFontSize  float64
	HeadingMinBoldRatio float64

	// Layout constants. FragmentMergeGap is the horizontal gap (in layout
	// units) above which a word break is inserted between fragments.
	// RowTolerance groups fragments whose tops differ by at most this much
	// into one line. ParagraphGap is the vertical gap that forces a
	// paragraph break between body lines on the same page.
	FragmentMergeGap float64
	RowTolerance     float64
	ParagraphGap     float64

	// SkipPatterns match known boilerplate lines (copyright footers,
	// licensing stamps, page banners). Case-insensitivity is baked into
	// the patterns themselves.
	SkipPatterns []*regexp.Regexp
}

var defaultSkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^copyright british standards institution`),
	regexp.MustCompile(`(?i)^provided by accuris`),
	regexp.MustCompile(`(?i)^licensee=`),
	regexp.MustCompile(`(?i)^not for resale`),
	regexp.MustCompile(`(?i)^no reproduction or networking permitted`),
	regexp.MustCompile(`(?i)^bs en `),
	regexp.MustCompile(`(?i)^iec 61513`),
	regexp.MustCompile(`(?i)^61513`),
	regexp.MustCompile(`(?i)^raising standards worldwide`),
	regexp.MustCompile(`^–\s*\d+\s*–`),
	regexp.MustCompile("^--[`',.-]{5,}"),
}

// Default returns the built-in tuning with no environment applied.
func Default() Config {
	return Config{
		Host:                "127.0.0.1",
		Port:                "8000",
		MaxUploadBytes:      10 << 20, // 10 MiB
		HeadingMinFontSize:  14,
		HeadingMinBoldRatio: 0.5,
		FragmentMergeGap:    1.5,
		RowTolerance:        2.0,
		ParagraphGap:        18,
		SkipPatterns:        defaultSkipPatterns,
	}
}

// Load reads configuration from the environment on top of the defaults.
func Load() Config {
	cfg := Default()

	cfg.Host = envOr("HOST", cfg.Host)
	cfg.Port = envOr("PORT", cfg.Port)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.HeadingMinFontSize = envFloat("HEADING_MIN_FONT_SIZE", cfg.HeadingMinFontSize)
	cfg.HeadingMinBoldRatio = envFloat("HEADING_MIN_BOLD_RATIO", cfg.HeadingMinBoldRatio)
	cfg.FragmentMergeGap = envFloat("FRAGMENT_MERGE_GAP", cfg.FragmentMergeGap)
	cfg.RowTolerance = envFloat("ROW_TOLERANCE", cfg.RowTolerance)
	cfg.ParagraphGap = envFloat("PARAGRAPH_GAP", cfg.ParagraphGap)

	if extra := os.Getenv("EXTRA_SKIP_PATTERNS"); extra != "" {
		patterns := make([]*regexp.Regexp, len(cfg.SkipPatterns), len(cfg.SkipPatterns)+4)
		copy(patterns, cfg.SkipPatterns)
		for _, expr := range strings.Split(extra, ",") {
			expr = strings.TrimSpace(expr)
			if expr == "" {
				continue
			}
			if re, err := regexp.Compile(expr); err == nil {
				patterns = append(patterns, re)
			}
		}
		cfg.SkipPatterns = patterns
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}

	return cfg
}

func (c Config) Validate() error {
	if c.HeadingMinFontSize <= 0 {
		return fmt.Errorf("heading font size threshold must be positive")
	}
	if c.HeadingMinBoldRatio < 0 || c.HeadingMinBoldRatio > 1 {
		return fmt.Errorf("heading bold ratio threshold must be within [0,1]")
	}
	if c.FragmentMergeGap < 0 || c.ParagraphGap < 0 || c.RowTolerance < 0 {
		return fmt.Errorf("layout gap constants must be non-negative")
	}
	return nil
}

// Addr returns the host:port pair the server binds.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
