package ui

import (
	"fmt"
	"strings"

	"github.com/zappabad/tickrush/internal/candle"
)

// renderCandleChart draws OHLC candles into a fixed-size text grid,
// most-recent candles on the right.
func renderCandleChart(theme Theme, candles []candle.Candle, width, height int) string {
	if len(candles) == 0 || width < 12 || height < 5 {
		return theme.muted().Render("waiting for data...")
	}

	// Reserve room for the price axis.
	chartWidth := width - 10
	candleWidth := 2 // candle column plus a space
	candlesToShow := chartWidth / candleWidth
	if candlesToShow < 1 {
		candlesToShow = 1
	}
	if candlesToShow > len(candles) {
		candlesToShow = len(candles)
	}
	display := candles[len(candles)-candlesToShow:]

	minPrice, maxPrice := display[0].Low, display[0].High
	for _, c := range display {
		if c.Low < minPrice {
			minPrice = c.Low
		}
		if c.High > maxPrice {
			maxPrice = c.High
		}
	}
	priceRange := maxPrice - minPrice
	if priceRange == 0 {
		priceRange = 1
	}
	// 10% padding keeps candles off the panel edges.
	minPrice -= priceRange * 0.1
	maxPrice += priceRange * 0.1

	rows := height - 1
	if rows < 4 {
		rows = 4
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		rowPrice := rowToPrice(row, minPrice, maxPrice, rows)
		b.WriteString(theme.muted().Render(fmt.Sprintf("%8.2f │", rowPrice)))

		for _, c := range display {
			ch := candleRune(c, rowPrice, (maxPrice-minPrice)/float64(rows*2))
			style := theme.up()
			if c.Close < c.Open {
				style = theme.down()
			}
			b.WriteString(style.Render(string(ch)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.muted().Render("─────────┴" + strings.Repeat("──", len(display))))
	return b.String()
}

// renderLineChart draws the raw price series as a sparkline-style plot.
func renderLineChart(theme Theme, series []float64, width, height int) string {
	if len(series) == 0 || width < 12 || height < 5 {
		return theme.muted().Render("waiting for data...")
	}

	chartWidth := width - 10
	if chartWidth < 10 {
		chartWidth = 10
	}
	display := series
	if len(series) > chartWidth {
		display = series[len(series)-chartWidth:]
	}

	minPrice, maxPrice := display[0], display[0]
	for _, p := range display {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}
	priceRange := maxPrice - minPrice
	if priceRange == 0 {
		priceRange = 1
	}
	minPrice -= priceRange * 0.1
	maxPrice += priceRange * 0.1

	rows := height - 1
	if rows < 4 {
		rows = 4
	}

	// Precompute the row of each sample.
	sampleRows := make([]int, len(display))
	for i, p := range display {
		sampleRows[i] = priceToRow(p, minPrice, maxPrice, rows)
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.WriteString(theme.muted().Render(fmt.Sprintf("%8.2f │", rowToPrice(row, minPrice, maxPrice, rows))))
		for i := range display {
			if sampleRows[i] != row {
				b.WriteString(" ")
				continue
			}
			style := theme.up()
			if i > 0 && display[i] < display[i-1] {
				style = theme.down()
			}
			b.WriteString(style.Render("•"))
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.muted().Render("─────────┴" + strings.Repeat("─", len(display))))
	return b.String()
}

// candleRune picks the glyph for one chart cell: a thick body between open
// and close, a thin wick between high and low, blank otherwise.
func candleRune(c candle.Candle, rowPrice, tolerance float64) rune {
	bodyTop, bodyBottom := c.Open, c.Close
	if c.Close > c.Open {
		bodyTop, bodyBottom = c.Close, c.Open
	}

	if rowPrice <= bodyTop+tolerance && rowPrice >= bodyBottom-tolerance {
		return '┃'
	}
	if rowPrice <= c.High+tolerance && rowPrice > bodyTop {
		return '│'
	}
	if rowPrice >= c.Low-tolerance && rowPrice < bodyBottom {
		return '│'
	}
	return ' '
}

// rowToPrice maps a chart row (0 = top) back to a price.
func rowToPrice(row int, minPrice, maxPrice float64, rows int) float64 {
	frac := float64(row) / float64(rows-1)
	return maxPrice - frac*(maxPrice-minPrice)
}

// priceToRow maps a price to a chart row (0 = top).
func priceToRow(price, minPrice, maxPrice float64, rows int) int {
	frac := (maxPrice - price) / (maxPrice - minPrice)
	row := int(frac * float64(rows-1))
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return row
}
