// Command sheet is a line-oriented driver over the cell-graph engine. It is
// not part of the engine's contract; it only exercises it.
//
//	SET <pos> <text>
//	GET <pos>
//	IMPORT <pos>=<text>[,<pos>=<text>...]
//	CLEAR <pos>
//	PRINT VALUES
//	PRINT TEXTS
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkovac/sheetengine/internal"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	sheet := internal.NewSheet()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := execute(sheet, line, out); err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
	}
	return scanner.Err()
}

func execute(sheet *internal.Sheet, line string, out io.Writer) error {
	fields := strings.Fields(line)
	cmd := strings.ToUpper(fields[0])
	switch cmd {
	case "SET":
		if len(fields) < 3 {
			return fmt.Errorf("usage: SET <pos> <text>")
		}
		pos := internal.ParsePosition(fields[1])
		text := strings.Join(fields[2:], " ")
		return sheet.SetCell(pos, text)

	case "GET":
		if len(fields) != 2 {
			return fmt.Errorf("usage: GET <pos>")
		}
		pos := internal.ParsePosition(fields[1])
		value, err := sheet.Value(pos)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value.Render())
		return nil

	case "IMPORT":
		// IMPORT A1=10,B2==A1+1,B3==B2-1 — a comma-separated batch of
		// <pos>=<text> edits, validated concurrently then applied in order.
		if len(fields) < 2 {
			return fmt.Errorf("usage: IMPORT <pos>=<text>[,<pos>=<text>...]")
		}
		edits, err := parseImportEdits(strings.Join(fields[1:], " "))
		if err != nil {
			return err
		}
		return internal.ImportCells(context.Background(), sheet, edits)

	case "CLEAR":
		if len(fields) != 2 {
			return fmt.Errorf("usage: CLEAR <pos>")
		}
		return sheet.ClearCell(internal.ParsePosition(fields[1]))

	case "PRINT":
		if len(fields) != 2 {
			return fmt.Errorf("usage: PRINT VALUES|TEXTS")
		}
		switch strings.ToUpper(fields[1]) {
		case "VALUES":
			return sheet.PrintValues(out)
		case "TEXTS":
			return sheet.PrintTexts(out)
		default:
			return fmt.Errorf("usage: PRINT VALUES|TEXTS")
		}

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

// parseImportEdits splits a comma-separated "<pos>=<text>" list into
// CellEdits. Only the first '=' in each segment separates position from
// text, since text for a formula cell legitimately starts with its own '='.
func parseImportEdits(spec string) ([]internal.CellEdit, error) {
	segments := strings.Split(spec, ",")
	edits := make([]internal.CellEdit, 0, len(segments))
	for _, seg := range segments {
		idx := strings.Index(seg, "=")
		if idx < 0 {
			return nil, fmt.Errorf("malformed import segment %q: expected <pos>=<text>", seg)
		}
		edits = append(edits, internal.CellEdit{
			Pos:  internal.ParsePosition(seg[:idx]),
			Text: seg[idx+1:],
		})
	}
	return edits, nil
}
