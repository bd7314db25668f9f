package repo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
	"github.com/rogerio-castellano/wecare-inventory/internal/validate"
)

const fieldsPerRecord = 5

// FileProductRepository stores products in a flat comma-separated file,
// one `Name,Brand,Quantity,CostPrice,Origin` line per product.
type FileProductRepository struct {
	path      string
	validator *validate.Validator
}

// NewFileProductRepository creates a repository backed by the file at path.
func NewFileProductRepository(path string) *FileProductRepository {
	return &FileProductRepository{path: path, validator: validate.New()}
}

func (r *FileProductRepository) Path() string {
	return r.path
}

// Load reads the product file. Ids are assigned 1..n in line order.
func (r *FileProductRepository) Load(_ context.Context) (*models.Inventory, error) {
	inv := models.NewInventory()

	file, err := os.Open(r.path)
	if err != nil {
		return inv, fmt.Errorf("failed to open product file: %w", err)
	}
	defer file.Close()

	err = DecodeProducts(file, inv, r.validator)
	return inv, err
}

// Save overwrites the product file with the current table.
func (r *FileProductRepository) Save(_ context.Context, inv *models.Inventory) error {
	var buf bytes.Buffer
	if err := EncodeProducts(&buf, inv); err != nil {
		return err
	}

	if err := os.WriteFile(r.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write product file: %w", err)
	}
	return nil
}

// DecodeProducts parses product lines from rd into inv. A malformed line is skipped and
// reported; it does not stop the lines after it from loading. Blank lines are ignored.
// Lines of any length are read in full.
func DecodeProducts(rd io.Reader, inv *models.Inventory, v *validate.Validator) error {
	var errs []error

	br := bufio.NewReader(rd)
	for lineNum := 1; ; lineNum++ {
		line, readErr := br.ReadString('\n')
		if line != "" {
			if err := decodeLine(strings.TrimRight(line, "\r\n"), inv, v); err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", lineNum, err))
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				errs = append(errs, fmt.Errorf("failed to read product file: %w", readErr))
			}
			break
		}
	}
	return errors.Join(errs...)
}

func decodeLine(line string, inv *models.Inventory, v *validate.Validator) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	p, err := parseRecord(line)
	if err != nil {
		return err
	}
	if err := v.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	inv.Add(p)
	return nil
}

func parseRecord(line string) (models.Product, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerRecord {
		return models.Product{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, fieldsPerRecord, len(fields))
	}

	qty, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: invalid quantity %q", ErrMalformedRecord, fields[2])
	}
	cost, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: invalid cost price %q", ErrMalformedRecord, fields[3])
	}

	return models.Product{
		Name:      fields[0],
		Brand:     fields[1],
		Quantity:  qty,
		CostPrice: cost,
		Origin:    fields[4],
	}, nil
}

// EncodeProducts writes one line per product in id order. Fields are not escaped.
func EncodeProducts(w io.Writer, inv *models.Inventory) error {
	for _, p := range inv.All() {
		line := strings.Join([]string{
			p.Name,
			p.Brand,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.CostPrice),
			p.Origin,
		}, ",")
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("failed to encode product %d: %w", p.ID, err)
		}
	}
	return nil
}
