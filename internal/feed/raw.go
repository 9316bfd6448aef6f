package feed

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RawAuthor is the author as reported by the source. Empty fields are
// replaced with platform defaults during normalization.
type RawAuthor struct {
	Name     string
	Username string
	Avatar   string
}

// RawRecord is what an adapter extracted from a platform response before
// normalization. Zero values mean "absent".
type RawRecord struct {
	Author  RawAuthor
	Content string

	// Media hints, consulted in the order they are declared here.
	ImageHint     bool
	MediaURL      string
	IsVideo       bool
	VideoURL      string
	Domain        string
	PreviewImages []string
	ThumbnailURL  string

	Likes    int64
	Comments int64
	Shares   int64
	Views    int64

	// Timestamp is used verbatim when set; otherwise PublishedAt is
	// formatted relative to the normalizer's clock.
	Timestamp   string
	PublishedAt time.Time

	SourceID  string
	SourceURL string
}

// NormalizationError reports input that could not be turned into a record.
type NormalizationError struct {
	Field  string
	Reason string
}

func (e *NormalizationError) Error() string {
	if e.Field == "" {
		return "normalize: " + e.Reason
	}
	return fmt.Sprintf("normalize %s: %s", e.Field, e.Reason)
}

// DecodeRawRecord reads a loosely typed record, such as a decoded JSON
// object. Unknown keys are ignored and missing keys stay zero. Anything
// other than an object is rejected.
//
// Recognized keys: user{name,username,avatar}, content, media_url,
// post_hint, is_video, video_url, domain, preview_images, thumbnail,
// likes, comments, shares, views, timestamp, published_at, source_id,
// source_url.
func DecodeRawRecord(v any) (RawRecord, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return RawRecord{}, &NormalizationError{Reason: fmt.Sprintf("expected an object, got %T", v)}
	}

	var r RawRecord
	var err error

	if u, present := m["user"]; present && u != nil {
		um, ok := u.(map[string]any)
		if !ok {
			return RawRecord{}, &NormalizationError{Field: "user", Reason: fmt.Sprintf("expected an object, got %T", u)}
		}
		r.Author = RawAuthor{
			Name:     stringField(um, "name"),
			Username: stringField(um, "username"),
			Avatar:   stringField(um, "avatar"),
		}
	}

	r.Content = stringField(m, "content")
	r.MediaURL = stringField(m, "media_url")
	r.ImageHint = stringField(m, "post_hint") == "image"
	r.IsVideo, _ = m["is_video"].(bool)
	r.VideoURL = stringField(m, "video_url")
	r.Domain = stringField(m, "domain")
	r.ThumbnailURL = stringField(m, "thumbnail")
	r.Timestamp = stringField(m, "timestamp")
	r.SourceID = stringField(m, "source_id")
	r.SourceURL = stringField(m, "source_url")

	if imgs, ok := m["preview_images"].([]any); ok {
		for _, img := range imgs {
			if s, ok := img.(string); ok && s != "" {
				r.PreviewImages = append(r.PreviewImages, s)
			}
		}
	}

	for key, dst := range map[string]*int64{
		"likes":    &r.Likes,
		"comments": &r.Comments,
		"shares":   &r.Shares,
		"views":    &r.Views,
	} {
		if *dst, err = countField(m, key); err != nil {
			return RawRecord{}, err
		}
	}

	if s := stringField(m, "published_at"); s != "" {
		if t, perr := ParseSourceTime(s); perr == nil {
			r.PublishedAt = t
		}
	}

	return r, nil
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// countField accepts JSON numbers, Go integers and numeric strings (some
// APIs send counters as strings). Negative counts clamp to zero.
func countField(m map[string]any, key string) (int64, error) {
	var n int64
	switch v := m[key].(type) {
	case nil:
		return 0, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &NormalizationError{Field: key, Reason: "not a finite number"}
		}
		if v >= math.MaxInt64 {
			n = math.MaxInt64
		} else {
			n = int64(v)
		}
	case int:
		n = int64(v)
	case int64:
		n = v
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, &NormalizationError{Field: key, Reason: fmt.Sprintf("not an integer: %q", v.String())}
		}
		n = parsed
	case uint64:
		if v > math.MaxInt64 {
			v = math.MaxInt64
		}
		n = int64(v)
	case string:
		if v == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, &NormalizationError{Field: key, Reason: fmt.Sprintf("not an integer: %q", v)}
		}
		n = parsed
	default:
		return 0, &NormalizationError{Field: key, Reason: fmt.Sprintf("unexpected type %T", v)}
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
