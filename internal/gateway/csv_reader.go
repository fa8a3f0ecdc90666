package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"underwriting-risk/internal/domain"
)

// FileRepository implements the usecase ApplicationRepository port over local
// files: statement CSVs and application / registry JSON documents.
type FileRepository struct {
	logger *zap.Logger
}

// NewFileRepository creates a new repository instance. A nil logger discards logs.
func NewFileRepository(logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{logger: logger}
}

// statementColumns maps the recognised header names to their position.
type statementColumns struct {
	date, description, amount, balance int
}

func parseStatementHeader(header []string) (statementColumns, error) {
	cols := statementColumns{date: -1, description: -1, amount: -1, balance: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "date":
			cols.date = i
		case "description":
			cols.description = i
		case "amount":
			cols.amount = i
		case "balance":
			cols.balance = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, "date")
	}
	if cols.description < 0 {
		missing = append(missing, "description")
	}
	if cols.amount < 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// GetStatement reads one bank-statement CSV with a header row naming
// date, description, amount and optionally balance columns.
//
// An empty amount or date is kept as a malformed row (NaN amount / zero date)
// for the scoring core to skip; a value that is present but unparsable is an error.
func (r *FileRepository) GetStatement(ctx context.Context, path string) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	cols, err := parseStatementHeader(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header in %s: %w", path, err)
	}

	transactions := make([]domain.Transaction, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		tx, err := r.parseStatementRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		transactions = append(transactions, tx)
	}

	r.logger.Debug("statement loaded",
		zap.String("path", path),
		zap.Int("transactions", len(transactions)))

	return transactions, nil
}

func (r *FileRepository) parseStatementRecord(record []string, cols statementColumns) (domain.Transaction, error) {
	var tx domain.Transaction

	if raw := field(record, cols.date); raw != "" {
		date, err := domain.ParseCalendarDate(raw)
		if err != nil {
			return tx, err
		}
		tx.Date = date.Time
	}

	tx.Description = field(record, cols.description)

	raw := field(record, cols.amount)
	if raw == "" {
		r.logger.Warn("statement row has no amount", zap.String("description", tx.Description))
		tx.Amount = math.NaN()
	} else {
		amount, err := parseAmount(raw)
		if err != nil {
			return tx, fmt.Errorf("could not parse amount '%s': %w", raw, err)
		}
		tx.Amount = amount
	}
	tx.Type = domain.TransactionTypeOf(tx.Amount)

	if raw := field(record, cols.balance); raw != "" {
		balance, err := parseAmount(raw)
		if err != nil {
			return tx, fmt.Errorf("could not parse balance '%s': %w", raw, err)
		}
		tx.Balance = &balance
	}

	return tx, nil
}

// parseAmount accepts "1,234.56", "$-12.00" and accounting negatives "(12.00)".
func parseAmount(raw string) (float64, error) {
	s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount is not finite")
	}
	if negative {
		amount = -amount
	}
	return amount, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
