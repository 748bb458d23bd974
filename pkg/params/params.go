// Package params reads the optional query parameters shared by the API
// handlers. Invalid values fall back to the default; nothing here fails a
// request.
package params

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
)

const MaxLimit = 100

func Int(c echo.Context, name string, def int) int {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Limit reads a row count clamped to [1, MaxLimit].
func Limit(c echo.Context, name string, def int) int {
	return Clamp(Int(c, name, def))
}

func Clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

func Location(c echo.Context) string {
	if v := strings.TrimSpace(c.QueryParam("location")); v != "" {
		return v
	}
	return dataset.DefaultLocation
}

func String(c echo.Context, name string) string {
	return strings.TrimSpace(c.QueryParam(name))
}
