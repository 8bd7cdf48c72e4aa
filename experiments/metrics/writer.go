package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"checkers/game"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID   uuid.UUID
	Game int // index within the experiment
	Seed uint64
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp>-<id> to hold the experiment files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+uuid.NewString()[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRules(rules game.Rules, seed uint64, games int) error {
	header := []string{"columns", "rows", "min_coins", "max_coins", "black_pieces", "strict_placement", "seed", "games"}
	row := []string{
		strconv.Itoa(rules.Columns),
		strconv.Itoa(rules.Rows),
		strconv.Itoa(rules.MinCoins),
		strconv.Itoa(rules.MaxCoins),
		strconv.Itoa(rules.BlackPieces),
		strconv.FormatBool(rules.StrictPlacement),
		strconv.FormatUint(seed, 10),
		strconv.Itoa(games),
	}
	return w.write("config.csv", header, [][]string{row})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game", "seed", "status", "rounds", "black_moves", "black_idle", "captures", "survivors", "coins_left", "stalled", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Game),
			strconv.FormatUint(record.Seed, 10),
			record.Status.String(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.BlackMoves),
			strconv.Itoa(record.BlackIdle),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Survivors),
			strconv.Itoa(record.CoinsLeft),
			strconv.FormatBool(record.Stalled),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
