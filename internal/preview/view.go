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

package preview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View implements [tea.Model].
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	state := "playing"
	if m.paused {
		state = "paused"
	}
	header := titleStyle.Render(fmt.Sprintf(" golden spiral ─ depth %d ", m.depth)) +
		dimStyle.Render(state)

	cols, rows := m.canvasSize()
	canvas := lipgloss.NewStyle().Width(cols).Height(max(rows, 0)).Render(m.frame)

	var status string
	if m.err != nil {
		status = errStyle.Render(" " + m.err.Error() + " ")
	} else {
		s := m.last
		status = dimStyle.Render(fmt.Sprintf(" nodes %d  +%d ~%d -%d  %s ",
			s.Nodes, s.Entered, s.Updated, s.Exited, s.Elapsed.Round(time.Microsecond)))
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.help.View(keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}
