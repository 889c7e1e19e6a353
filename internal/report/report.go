package report

import (
	"strconv"
	"strings"

	"github.com/goserg/ratingtracker/internal/domain"
)

// Record is one history line ready for display. Index starts at 1.
type Record struct {
	Index        int
	OpponentName string
	IsWin        bool
	RatingValue  int
}

func Records(history []domain.GameResult) []Record {
	records := make([]Record, 0, len(history))
	for i, r := range history {
		records = append(records, Record{
			Index:        i + 1,
			OpponentName: r.OpponentName(),
			IsWin:        r.IsWin(),
			RatingValue:  r.RatingValue(),
		})
	}
	return records
}

func History(name string, history []domain.GameResult) string {
	var buf strings.Builder
	buf.WriteString("Game history for ")
	buf.WriteString(name)
	buf.WriteString(":\n")
	for _, r := range Records(history) {
		buf.WriteString("Game ")
		buf.WriteString(strconv.Itoa(r.Index))
		buf.WriteString(": vs ")
		buf.WriteString(r.OpponentName)
		buf.WriteString(", result: ")
		buf.WriteString(result(r.IsWin))
		buf.WriteString(", game rating: ")
		buf.WriteString(strconv.Itoa(r.RatingValue))
		buf.WriteString("\n")
	}
	return buf.String()
}

func Summary(account domain.Snapshot) string {
	var buf strings.Builder
	buf.WriteString("Name: ")
	buf.WriteString(account.Name)
	buf.WriteString("\n")
	buf.WriteString("Account type: ")
	buf.WriteString(string(account.Kind))
	buf.WriteString("\n")
	buf.WriteString("Rating: ")
	buf.WriteString(strconv.Itoa(account.Rating))
	buf.WriteString("\n")
	buf.WriteString("Games played: ")
	buf.WriteString(strconv.Itoa(account.GamesPlayed))
	buf.WriteString("\n")
	return buf.String()
}

func result(isWin bool) string {
	if isWin {
		return "win"
	}
	return "loss"
}
