package log

import "strconv"

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(i int64) string {
	if i > 0 {
		return "+" + strconv.FormatInt(i, 10)
	}
	return strconv.FormatInt(i, 10)
}
