// seehuhn.de/go/fractal - golden spiral fractals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SpiralArc returns the path data for a quarter circle of the given
// radius, centred at (r, r) and running from (r, 0) to (0, r).
func SpiralArc(r float64) string {
	b := Format(r)
	return "M " + b + " 0 A " + b + " " + b + " 0 0 0 0 " + b
}

// SpiralQuad returns the path data for a quadratic Bézier curve from
// (0, r) to (r, 0) with the control point at the origin.  This is a
// cheaper stand-in for [SpiralArc].
func SpiralQuad(r float64) string {
	b := Format(r)
	return "M 0 " + b + " Q 0 0 " + b + " 0"
}

// ParsePath converts SVG path data into a [path.Data].  The commands
// M, L, H, V, Q, C, A and Z are understood, in both the absolute and the
// relative form.  Elliptical arcs are approximated by cubic Bézier curves,
// using one curve per quarter turn or part thereof.
func ParsePath(d string) (*path.Data, error) {
	sc := &pathScanner{s: d}
	res := &path.Data{}

	var cur, start vec.Vec2
	var cmd byte
	haveCurrent := false
	for {
		sc.skipSpace()
		if sc.done() {
			break
		}
		if c := sc.peek(); isCommand(c) {
			cmd = c
			sc.pos++
		} else if cmd == 0 {
			return nil, sc.errorf("missing command")
		}

		rel := cmd >= 'a' && cmd <= 'z'
		off := vec.Vec2{}
		if rel {
			off = cur
		}
		if !haveCurrent && cmd != 'M' && cmd != 'm' {
			return nil, sc.errorf("%c without current point", cmd)
		}

		switch cmd {
		case 'M', 'm':
			p, err := sc.point(off)
			if err != nil {
				return nil, err
			}
			res.MoveTo(p)
			cur, start = p, p
			haveCurrent = true
			// further coordinate pairs are implicit line-tos
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			p, err := sc.point(off)
			if err != nil {
				return nil, err
			}
			res.LineTo(p)
			cur = p
		case 'H', 'h':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			cur = vec.Vec2{X: x + off.X, Y: cur.Y}
			res.LineTo(cur)
		case 'V', 'v':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			cur = vec.Vec2{X: cur.X, Y: y + off.Y}
			res.LineTo(cur)
		case 'Q', 'q':
			pts, err := sc.points(off, 2)
			if err != nil {
				return nil, err
			}
			res.QuadTo(pts[0], pts[1])
			cur = pts[1]
		case 'C', 'c':
			pts, err := sc.points(off, 3)
			if err != nil {
				return nil, err
			}
			res.CubeTo(pts[0], pts[1], pts[2])
			cur = pts[2]
		case 'A', 'a':
			var args [5]float64
			for i := range args {
				x, err := sc.number()
				if err != nil {
					return nil, err
				}
				args[i] = x
			}
			end, err := sc.point(off)
			if err != nil {
				return nil, err
			}
			appendArc(res, cur, end, args[0], args[1], args[2], args[3] != 0, args[4] != 0)
			cur = end
		case 'Z', 'z':
			res.Close()
			cur = start
			cmd = 0
		default:
			return nil, sc.errorf("unsupported command %c", cmd)
		}
	}
	return res, nil
}

// appendArc adds an SVG elliptical arc from p1 to p2 to res, converting
// from the endpoint to the centre parameterisation first.
func appendArc(res *path.Data, p1, p2 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool) {
	if p1 == p2 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		res.LineTo(p2)
		return
	}

	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)
	dx, dy := (p1.X-p2.X)/2, (p1.Y-p2.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// scale up radii which are too small to reach the end point
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx
	center := vec.Vec2{
		X: cosPhi*cxp - sinPhi*cyp + (p1.X+p2.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (p1.Y+p2.Y)/2,
	}

	ux, uy := (x1-cxp)/rx, (y1-cyp)/ry
	vx, vy := (-x1-cxp)/rx, (-y1-cyp)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	at := func(t float64) (p, dp vec.Vec2) {
		sin, cos := math.Sincos(t)
		p = vec.Vec2{
			X: center.X + rx*cos*cosPhi - ry*sin*sinPhi,
			Y: center.Y + rx*cos*sinPhi + ry*sin*cosPhi,
		}
		dp = vec.Vec2{
			X: -rx*sin*cosPhi - ry*cos*sinPhi,
			Y: -rx*sin*sinPhi + ry*cos*cosPhi,
		}
		return p, dp
	}

	n := max(int(math.Ceil(math.Abs(delta)/(math.Pi/2)-1e-9)), 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := range n {
		t0 := theta + float64(i)*step
		a, da := at(t0)
		b, db := at(t0 + step)
		if i == n-1 {
			b = p2
		}
		res.CubeTo(a.Add(da.Mul(k)), b.Sub(db.Mul(k)), b)
	}
}

func isCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvQqCcAaZz", c) >= 0
}

type pathScanner struct {
	s   string
	pos int
}

func (sc *pathScanner) done() bool {
	return sc.pos >= len(sc.s)
}

func (sc *pathScanner) peek() byte {
	return sc.s[sc.pos]
}

func (sc *pathScanner) skipSpace() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *pathScanner) number() (float64, error) {
	sc.skipSpace()
	start := sc.pos
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == '-' || sc.s[sc.pos] == '+') {
		sc.pos++
	}
	seenDot, seenExp := false, false
scan:
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp && sc.pos > start:
			seenExp = true
			if sc.pos+1 < len(sc.s) && (sc.s[sc.pos+1] == '-' || sc.s[sc.pos+1] == '+') {
				sc.pos++
			}
		default:
			break scan
		}
		sc.pos++
	}
	x, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, sc.errorf("invalid number %q", sc.s[start:sc.pos])
	}
	return x, nil
}

func (sc *pathScanner) point(off vec.Vec2) (vec.Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x + off.X, Y: y + off.Y}, nil
}

func (sc *pathScanner) points(off vec.Vec2, n int) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, n)
	for i := range res {
		p, err := sc.point(off)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

func (sc *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: path offset %d: %s", ErrSyntax, sc.pos, fmt.Sprintf(format, args...))
}
