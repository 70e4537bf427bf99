// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/polls/store"
)

type questionRecord struct {
	Text    string
	PubDate time.Time
	Choices []string
}

// LoadQuestions reads questions from a CSV file and inserts them with their
// choices in a single transaction. Rows are
//
//	question_text,pub_date,choice,choice,...
//
// where pub_date is RFC 3339 or a signed number of days relative to now.
// A header row starting with question_text is skipped.
func LoadQuestions(ctx context.Context, conn *sqlx.DB, path string, now time.Time) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	records, err := readQuestions(file, now)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		question, err := store.CreateQuestion(ctx, tx, record.Text, record.PubDate)
		if err != nil {
			return 0, fmt.Errorf("insert question %q: %w", record.Text, err)
		}
		for _, text := range record.Choices {
			if _, err := store.CreateChoice(ctx, tx, question.ID, text, 0); err != nil {
				return 0, fmt.Errorf("insert choice %q: %w", text, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	return len(records), nil
}

func readQuestions(r io.Reader, now time.Time) ([]questionRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []questionRecord
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		text := strings.TrimSpace(row[0])
		if i == 0 && text == "question_text" {
			continue
		}
		if text == "" {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: missing pub_date", i+1)
		}
		pubDate, err := parsePubDate(strings.TrimSpace(row[1]), now)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		record := questionRecord{Text: text, PubDate: pubDate}
		for _, choice := range row[2:] {
			if choice = strings.TrimSpace(choice); choice != "" {
				record.Choices = append(record.Choices, choice)
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func parsePubDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty pub_date")
	}
	if days, err := strconv.Atoi(raw); err == nil {
		return now.AddDate(0, 0, days), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pub_date %q", raw)
	}
	return t, nil
}
