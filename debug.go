package shape

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// This file mirrors the teacher's Path.String (path.go): a compact,
// human-readable rendering of a Path's commands, useful in test failure
// messages and ad-hoc debugging. Numbers are minified with
// tdewolff/parse/v2/strconv rather than fmt, since twip coordinates are
// always integral and the minifier drops the trailing ".0" fmt would print.

func appendInt32(buf []byte, v int32) []byte {
	return strconv.AppendFloat(buf, float64(v), 0)
}

// String renders p's commands as a compact path-data string: "M0 0L10
// 0Q5 5 0 10". There is no closing "Z": a contour's return to its MoveTo
// point is just another Line/CurveTo command (path.go's CmdKind doc).
func (p Path) String() string {
	var sb strings.Builder
	buf := make([]byte, 0, 32)
	for _, c := range p.Commands {
		switch c.Kind {
		case MoveTo:
			sb.WriteByte('M')
		case LineTo:
			sb.WriteByte('L')
		case CurveTo:
			sb.WriteByte('Q')
		}
		if c.Kind == CurveTo {
			buf = appendInt32(buf[:0], c.Control.X)
			sb.Write(buf)
			sb.WriteByte(' ')
			buf = appendInt32(buf[:0], c.Control.Y)
			sb.Write(buf)
			sb.WriteByte(' ')
		}
		buf = appendInt32(buf[:0], c.Point.X)
		sb.Write(buf)
		sb.WriteByte(' ')
		buf = appendInt32(buf[:0], c.Point.Y)
		sb.Write(buf)
	}
	return sb.String()
}

// String renders s as its paths' strings, one per line, prefixed with the
// style slot they belong to ("fill"/"line").
func (s *Shape) String() string {
	var sb strings.Builder
	for i, p := range s.Paths {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if p.Fill != nil {
			sb.WriteString("fill ")
		} else {
			sb.WriteString("line ")
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}
