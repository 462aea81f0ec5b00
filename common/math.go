package common

// Signum returns -1, 0 or 1 following the sign of v.
func Signum(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
