package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"booking-registry/models/user"

	"github.com/gofiber/fiber/v2"
)

// FormatCurrency renders an amount the way the printed documents expect:
// rupee prefix, Indian digit grouping, no fractional digits.
// 1293102 -> "Rs. 12,93,102".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return "Rs. " + sign + groupIndian(n)
}

// groupIndian applies lakh/crore grouping: last three digits, then pairs.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatDate renders a timestamp as dd/mm/yyyy for display.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatArea renders an optional square-foot measure, N/A when absent.
func FormatArea(v *float64) string {
	if v == nil {
		return "N/A sq.ft"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " sq.ft"
}

// Display returns the string behind an optional column or the placeholder.
func Display(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

// CurrentUser returns the authenticated user stored by the auth middleware.
func CurrentUser(c *fiber.Ctx) (*user.User, error) {
	u, ok := c.Locals("authUser").(*user.User)
	if !ok || u == nil {
		return nil, fmt.Errorf("no authenticated user in context")
	}
	return u, nil
}
