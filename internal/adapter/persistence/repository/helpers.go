package repository

import (
	"os"
	"strconv"
	"time"

	"locaequip/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Floats are stored as strings to avoid DynamoDB number-precision surprises.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Timestamps travel as RFC3339Nano, calendar dates as YYYY-MM-DD.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatDate(t time.Time) string {
	return t.Format(entities.DateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(entities.DateLayout, s)
	return t
}
