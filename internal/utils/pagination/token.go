package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// DefaultLimit is used when a caller asks for a page without a size.
const DefaultLimit = 50

// MaxLimit caps the size of a single page.
const MaxLimit = 500

// Cursor identifies the last row of a page in (date, created_at, id) order.
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// Compare orders cursors by date, then creation time, then ID.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.Date.Before(other.Date):
		return -1
	case c.Date.After(other.Date):
		return 1
	case c.CreatedAt.Before(other.CreatedAt):
		return -1
	case c.CreatedAt.After(other.CreatedAt):
		return 1
	}
	return strings.Compare(c.ID, other.ID)
}

// EncodeCursor creates an opaque page token.
func EncodeCursor(c Cursor) string {
	return EncodeMultiFieldToken(c.Date.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID)
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	if parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (missing id)")
	}
	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// NormalizeLimit replaces a non-positive limit with fallback (or DefaultLimit when
// fallback is not positive either) and caps the result at MaxLimit.
func NormalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}
