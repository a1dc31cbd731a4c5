// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixelthorn/gdx/internal/models"
)

// ExportToCSV converts a game sequence to CSV with columns: ID, Title, Release Date, Rating, Downloads, Coming Soon, Platforms, Tags
func ExportToCSV(games []models.Game) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Release Date", "Rating", "Downloads", "Coming Soon", "Platforms", "Tags"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, game := range games {
		record := []string{
			game.ID,
			game.Title,
			game.ReleaseDate,
			strconv.FormatFloat(game.Rating, 'f', 2, 64),
			strconv.Itoa(game.Downloads),
			strconv.FormatBool(game.ComingSoon),
			strings.Join(game.Platforms, "; "),
			strings.Join(game.Tags, "; "),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a game sequence to a Markdown listing with a title heading
func ExportToMarkdown(title string, games []models.Game) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Games**: %d\n\n", len(games)))

	for i, game := range games {
		buf.WriteString(fmt.Sprintf("%d. **%s** (%.2f★, %d downloads)", i+1, game.Title, game.Rating, game.Downloads))
		if game.ComingSoon {
			buf.WriteString(" _(coming soon)_")
		}
		buf.WriteString("\n")
		if game.Description != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", game.Description))
		}
		if len(game.Tags) > 0 {
			buf.WriteString(fmt.Sprintf("   Tags: %s\n", strings.Join(game.Tags, ", ")))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a game sequence to plain text format
func ExportToText(games []models.Game) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Catalog: %d games\n\n", len(games)))

	for i, game := range games {
		status := game.ReleaseDate
		if game.ComingSoon {
			status = "coming soon"
		}
		buf.WriteString(fmt.Sprintf("%d. %s (%s) rated %.2f\n", i+1, game.Title, status, game.Rating))
	}

	return buf.Bytes(), nil
}
