package golinq

import (
	"fmt"
	"reflect"
	"strings"
)

// formatOptions configure the string rendering of a query.
type formatOptions struct {
	separator string
	prefix    string
	postfix   string
	limit     int // negative means unbounded
	marker    string
}

func defaultFormatOptions() formatOptions {
	return formatOptions{
		separator: ", ",
		prefix:    "[",
		postfix:   "]",
		limit:     -1,
		marker:    "...",
	}
}

// FormatOption configures the rendering of Format.
type FormatOption func(o *formatOptions)

// WithSeparator sets the string rendered between elements.
func WithSeparator(separator string) FormatOption {
	return func(o *formatOptions) { o.separator = separator }
}

// WithPrefix sets the string rendered before the first element.
func WithPrefix(prefix string) FormatOption {
	return func(o *formatOptions) { o.prefix = prefix }
}

// WithPostfix sets the string rendered after the last element.
func WithPostfix(postfix string) FormatOption {
	return func(o *formatOptions) { o.postfix = postfix }
}

// WithLimit caps the number of rendered elements. If more elements remain
// once the limit is reached, they are replaced by the truncation marker.
func WithLimit(limit int) FormatOption {
	return func(o *formatOptions) { o.limit = limit }
}

// WithTruncateMarker sets the marker rendered in place of truncated elements.
func WithTruncateMarker(marker string) FormatOption {
	return func(o *formatOptions) { o.marker = marker }
}

// String renders the query with the default options. Rendering traverses the
// query, so formatting an unbounded query without a limit never returns.
func (q Query[T]) String() string {
	return q.Format()
}

// Format renders a bounded, human-readable representation of the query,
// recursing into nested queries and slices with the same options.
func (q Query[T]) Format(opts ...FormatOption) string {
	options := defaultFormatOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var sb strings.Builder

	q.formatTo(&sb, options)

	return sb.String()
}

// formatter lets nested queries render themselves regardless of their element
// type.
type formatter interface {
	formatTo(sb *strings.Builder, options formatOptions)
}

func (q Query[T]) formatTo(sb *strings.Builder, options formatOptions) {
	sb.WriteString(options.prefix)

	cur := q.Cursor()

	for count := 0; ; count++ {
		elem, ok := cur.Next()
		if !ok {
			break
		}

		if count > 0 {
			sb.WriteString(options.separator)
		}

		if options.limit >= 0 && count == options.limit {
			sb.WriteString(options.marker)
			break
		}

		formatValue(sb, elem, options)
	}

	sb.WriteString(options.postfix)
}

func formatValue(sb *strings.Builder, value any, options formatOptions) {
	if f, ok := value.(formatter); ok {
		f.formatTo(sb, options)
		return
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice {
		sb.WriteString(options.prefix)

		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteString(options.separator)
			}

			if options.limit >= 0 && i == options.limit {
				sb.WriteString(options.marker)
				break
			}

			formatValue(sb, rv.Index(i).Interface(), options)
		}

		sb.WriteString(options.postfix)

		return
	}

	fmt.Fprintf(sb, "%v", value)
}
