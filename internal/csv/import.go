package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// ErrHeaderMismatch is returned when the first line of an import does not
// match the expected columns in their exact order.
var ErrHeaderMismatch = fmt.Errorf("the CSV header must be exactly %q", strings.Join(Header, ";"))

// Import parses semicolon-delimited CSV into transactions.
//
// The whole batch is parsed before anything is returned: a single bad row
// aborts the import with an error naming the offending line, valid rows
// preceding it are not imported either.
//
// Match rules are applied to the description when a row has no category.
func Import(r io.Reader, rules []models.MatchRule) ([]models.Transaction, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import data: %w", err)
	}

	// Files exported by German spreadsheet tools are often Windows-1252
	// encoded, not UTF-8
	if !utf8.Valid(raw) {
		raw, err = charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("could not decode import data: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = ';'

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrHeaderMismatch
	}
	if err != nil {
		return nil, fmt.Errorf("could not read the CSV header: %w", err)
	}

	if len(header) > 0 {
		// Strip a UTF-8 byte order mark in front of the first column
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	if len(header) != len(Header) {
		return nil, ErrHeaderMismatch
	}

	for i, column := range Header {
		if strings.TrimSpace(header[i]) != column {
			return nil, ErrHeaderMismatch
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})

	var transactions []models.Transaction

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := types.ParseDate(record[colDate])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse the date: %w", err))
		}

		amount, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(record[colAmount]), ",", ".", 1))
		if err != nil {
			return csvReadError(reader, fmt.Errorf("%q could not be parsed to a decimal", record[colAmount]))
		}

		if amount.IsNegative() {
			return csvReadError(reader, errors.New("the amount for a transaction must not be negative"))
		}

		transactions = append(transactions, models.Transaction{
			Date:          date,
			Amount:        amount,
			Description:   strings.TrimSpace(record[colDescription]),
			Category:      match(rules, record[colCategory], record[colDescription]),
			Type:          parseType(record[colType]),
			PaymentMethod: paymentMethodOrDefault(record[colPaymentMethod]),
			IsPending:     parseStatus(record[colStatus]),
			IsRecurring:   strings.EqualFold(strings.TrimSpace(record[colRecurring]), recurringYes),
		})
	}

	return transactions, nil
}

// Column indices of the import format.
const (
	colStatus = iota
	colDate
	colDescription
	colCategory
	colAmount
	colType
	colPaymentMethod
	colRecurring
)

// match resolves the category of a row. An explicit category wins, then
// the first match rule whose pattern globs the description, then the
// default category.
func match(rules []models.MatchRule, category, description string) string {
	category = strings.TrimSpace(category)
	if category != "" {
		return category
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, strings.TrimSpace(description)) {
			return rule.Category
		}
	}

	return models.DefaultCategory
}

func paymentMethodOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.DefaultPaymentMethod
	}

	return s
}

// csvReadError returns an error that includes the line of the input the
// error occurred in.
func csvReadError(r *csv.Reader, err error) ([]models.Transaction, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
