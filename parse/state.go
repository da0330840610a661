package parse

type state int

const (
	statePreHeader state = iota
	stateHeader
	stateHeaderNewline
	statePreOffset
	stateOffset
	stateOffsetError
	statePreKey
	stateKey
	stateKeyEscaped
	stateKeyError
	statePreText
	stateText
	stateTextNewline
)

func (s state) String() string {
	switch s {
	case statePreHeader:
		return "pre-header"
	case stateHeader:
		return "header"
	case stateHeaderNewline:
		return "header-newline"
	case statePreOffset:
		return "pre-offset"
	case stateOffset:
		return "offset"
	case stateOffsetError:
		return "offset-error"
	case statePreKey:
		return "pre-key"
	case stateKey:
		return "key"
	case stateKeyEscaped:
		return "key-escaped"
	case stateKeyError:
		return "key-error"
	case statePreText:
		return "pre-text"
	case stateText:
		return "text"
	case stateTextNewline:
		return "text-newline"
	default:
		return "<unknown state>"
	}
}
