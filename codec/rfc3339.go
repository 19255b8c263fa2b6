// Package codec holds the string codecs used by Thing Description fields.
package codec

import (
	"context"
	"strings"
	"time"

	gowot "github.com/reoring/gowot"
)

// TimeRFC3339 converts between RFC 3339 date-time strings and time.Time.
// Decoding accepts the lowercase 't' and 'z' that RFC 3339 permits and any
// fractional precision. Encoding renders UTC with trailing zeros trimmed.
func TimeRFC3339() gowot.Codec[string, time.Time] { return dateTime{} }

type dateTime struct{}

func (dateTime) Decode(_ context.Context, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.ToUpper(s))
	if err != nil {
		return time.Time{}, gowot.InvalidValue(gowot.CodeInvalidFormat, "invalid RFC3339 time")
	}
	return t, nil
}

func (dateTime) Encode(_ context.Context, t time.Time) (string, error) {
	return t.UTC().Format(time.RFC3339Nano), nil
}
