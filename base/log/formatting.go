package log

import (
	"fmt"
)

const (
	timeFormat string = "060102 15:04:05.000"
	rightArrow        = "▶"
)

const (
	colorRed     = "\033[31m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorEnd     = "\033[0m"
)

var useColor bool

func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRAC"
	case DebugLevel:
		return "DEBU"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "ERRO"
	case CriticalLevel:
		return "CRIT"
	default:
		return "NONE"
	}
}

func (s Severity) color() string {
	switch s {
	case DebugLevel:
		return colorCyan
	case InfoLevel:
		return colorBlue
	case WarningLevel:
		return colorYellow
	case ErrorLevel:
		return colorRed
	case CriticalLevel:
		return colorMagenta
	default:
		return ""
	}
}

func formatLine(line *logLine, duplicates uint64, withColor bool) string {
	colorStart := ""
	colorStop := ""
	if withColor {
		colorStart = line.level.color()
		colorStop = colorEnd
	}

	if line.line == 0 {
		return fmt.Sprintf("%s%s ? %s %s%s%s %s", colorStart, line.timestamp.Format(timeFormat), rightArrow, line.level.String(), formatDuplicates(duplicates), colorStop, line.msg)
	}

	fPartStart := len(line.file) - 10
	if fPartStart < 0 {
		fPartStart = 0
	}
	return fmt.Sprintf("%s%s %s:%03d %s %s%s%s %s", colorStart, line.timestamp.Format(timeFormat), line.file[fPartStart:], line.line, rightArrow, line.level.String(), formatDuplicates(duplicates), colorStop, line.msg)
}

func formatDuplicates(duplicates uint64) string {
	if duplicates == 0 {
		return ""
	}
	return fmt.Sprintf(" [%dx]", duplicates+1)
}
