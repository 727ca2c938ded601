package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/muurk/deckcalc/internal/estimate"
)

// primaryScrewMarker identifies the fastener already shown as the screw count
const primaryScrewMarker = "Deck Screws"

func (c *Controller) render(est *estimate.Estimate) {
	c.el.DeckBoards.SetText(strconv.Itoa(est.DeckBoards))
	c.el.DeckBoardsLinearFeet.SetText(FormatNumber(est.DeckBoardsLinearFeet))
	c.el.BaseWood.SetText(strconv.Itoa(est.BaseWood))

	if c.el.FramingInfo != nil {
		c.el.FramingInfo.SetText(FramingInfo(est))
	}

	c.el.Screws.SetText(humanize.Comma(int64(est.Screws)))

	c.el.Fasteners.Clear()
	for _, f := range est.Fasteners {
		if IsPrimaryScrew(f.Name) {
			continue
		}
		c.el.Fasteners.Append(FormatFastener(f))
	}

	if c.el.Fasteners.Len() == 0 {
		c.el.FastenersSection.Hide()
	} else {
		c.el.FastenersSection.Show()
	}
}

// FramingInfo describes the frame, or returns "" when the estimate lacks
// the board size or joist spacing.
func FramingInfo(est *estimate.Estimate) string {
	if est.BoardSize == "" || est.JoistSpacing == 0 {
		return ""
	}
	return fmt.Sprintf(`%s @ %s" OC (including 15%% waste)`, est.BoardSize, FormatNumber(est.JoistSpacing))
}

// IsPrimaryScrew reports whether a fastener is the deck screw line.
func IsPrimaryScrew(name string) bool {
	return strings.Contains(name, primaryScrewMarker)
}

// FormatFastener renders a fastener list entry.
func FormatFastener(f estimate.Fastener) string {
	return fmt.Sprintf("%s — %d", f.Name, f.Quantity)
}

// FormatNumber renders v without trailing zeros ("343.2", "16", "0").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
