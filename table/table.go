package table

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/model"
	"github.com/dasdy/tabstyle/settings"
)

// Table couples records with the configuration used to render them.
type Table struct {
	records grid.StringRecords
	cfg     *grid.Config
}

func New(rows [][]string) *Table {
	return &Table{
		records: grid.StringRecords(rows),
		cfg:     grid.NewConfig(),
	}
}

// FromCSV reads every record of r. Rows may have different lengths.
func FromCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}

	return New(rows), nil
}

// With applies table options in order.
func (t *Table) With(opts ...settings.TableOption) *Table {
	for _, opt := range opts {
		opt.ChangeTable(t.records, t.cfg)
	}

	return t
}

// Modify applies cell options to every entity obj locates.
func (t *Table) Modify(obj settings.Object, opts ...settings.CellOption) *Table {
	return t.With(settings.Modify(obj).With(opts...))
}

func (t *Table) Config() *grid.Config {
	return t.cfg
}

func (t *Table) Records() grid.Records {
	return t.records
}

func (t *Table) Shape() model.Shape {
	return model.Shape{Rows: t.records.CountRows(), Cols: t.records.CountColumns()}
}

func (t *Table) String() string {
	return t.Render(nil)
}
