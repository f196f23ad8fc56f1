package stack

// ParenMatch reports whether every grouping symbol in expr matches
// correctly. Recognized pairs are (), [] and {}; all other runes are
// ignored. Runs in a single left-to-right scan.
func ParenMatch(expr string) bool {
	runes := []rune(expr)
	s := New[rune](len(runes))
	for _, c := range runes {
		switch {
		case isOpening(c):
			if err := s.Push(c); err != nil {
				return false
			}
		case isClosing(c):
			open, err := s.Pop()
			if err != nil {
				return false // nothing to match with
			}
			if !matches(open, c) {
				return false // wrong type
			}
		}
	}
	return s.IsEmpty()
}

func isOpening(c rune) bool {
	return c == '(' || c == '[' || c == '{'
}

func isClosing(c rune) bool {
	return c == ')' || c == ']' || c == '}'
}

func matches(open, close rune) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	default:
		return false
	}
}
