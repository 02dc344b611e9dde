package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded cursor for the page that starts at offset
// within the market snapshot fetched at snapshotTime.
func EncodeToken(snapshotTime time.Time, offset int) string {
	return EncodeMultiFieldToken(snapshotTime.Format(timeFormat), strconv.Itoa(offset))
}

// DecodeToken parses the cursor back into the snapshot time and offset.
func DecodeToken(token string) (time.Time, int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return time.Time{}, 0, err
	}
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	snapshotTime, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: invalid pagination token format (snapshot time parse): %w", apperrors.ErrValidation, err)
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return time.Time{}, 0, fmt.Errorf("%w: invalid pagination token format (offset)", apperrors.ErrValidation)
	}

	return snapshotTime, offset, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pagination token format (base64 decode): %w", apperrors.ErrValidation, err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// Page returns the window [offset, offset+limit) of items and the offset of the
// following page, or 0 when this is the last page. A non-positive limit returns
// everything from offset.
func Page[T any](items []T, offset, limit int) ([]T, int) {
	if offset >= len(items) {
		return []T{}, 0
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	next := 0
	if end < len(items) {
		next = end
	}
	return items[offset:end], next
}
