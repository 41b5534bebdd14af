package internal

// Tag keys are trimmed of the plain space character only. Tabs and
// newlines are significant and survive trimming.

// TrimSpaces removes ASCII space characters from both edges of s.
func TrimSpaces(s string) string {
	return TrimTrailingSpaces(TrimLeadingSpaces(s))
}

// TrimLeadingSpaces removes ASCII space characters from the head of s.
func TrimLeadingSpaces(s string) string {
	i := 0
	for i < len(s) && s[i] == CharSpace {
		i++
	}
	return s[i:]
}

// TrimTrailingSpaces removes ASCII space characters from the tail of s.
func TrimTrailingSpaces(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == CharSpace {
		end--
	}
	return s[:end]
}
