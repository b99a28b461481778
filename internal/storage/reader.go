// Package storage ingests pipe-delimited table files into engine tables
// and writes query results back out as delimited text. Every table is
// rebuilt from its source file on each run; nothing is cached between
// runs.
package storage

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/relq/internal/engine"
	"github.com/leengari/relq/internal/pipeline"
)

// delimiter separates fields within a line of a source or result file.
const delimiter = "|"

// Column schemas for the six source tables, in file field order.
var (
	customerColumns = []string{
		"C_CUSTKEY", "C_NAME", "C_ADDRESS", "C_NATIONKEY",
		"C_PHONE", "C_ACCTBAL", "C_MKTSEGMENT", "C_COMMENT",
	}
	ordersColumns = []string{
		"O_ORDERKEY", "O_CUSTKEY", "O_ORDERSTATUS", "O_TOTALPRICE",
		"O_ORDERDATE", "O_ORDERPRIORITY", "O_CLERK",
		"O_SHIPPRIORITY", "O_COMMENT",
	}
	lineitemColumns = []string{
		"L_ORDERKEY", "L_PARTKEY", "L_SUPPKEY", "L_LINENUMBER",
		"L_QUANTITY", "L_EXTENDEDPRICE", "L_DISCOUNT", "L_TAX",
		"L_RETURNFLAG", "L_LINESTATUS", "L_SHIPDATE",
		"L_COMMITDATE", "L_RECEIPTDATE", "L_SHIPINSTRUCT",
		"L_SHIPMODE", "L_COMMENT",
	}
	supplierColumns = []string{
		"S_SUPPKEY", "S_NAME", "S_ADDRESS", "S_NATIONKEY",
		"S_PHONE", "S_ACCTBAL", "S_COMMENT",
	}
	nationColumns = []string{"N_NATIONKEY", "N_NAME", "N_REGIONKEY", "N_COMMENT"}
	regionColumns = []string{"R_REGIONKEY", "R_NAME", "R_COMMENT"}
)

// ReadTable reads one table file: a row per line, fields split on the
// delimiter and zipped positionally to the given column names. One
// terminating delimiter is stripped first, so a line that ends in the
// delimiter carries exactly the fields before it and a line missing its
// last field stays short. Fields beyond the schema are ignored. A line
// with fewer fields than columns fails the whole read.
func ReadTable(path string, columns []string) (engine.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewUnreadableFile(path, err)
	}
	defer f.Close()

	var table engine.Table
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Split(strings.TrimSuffix(scanner.Text(), delimiter), delimiter)
		if len(fields) < len(columns) {
			return nil, NewShortLine(path, lineNo, len(fields), len(columns))
		}
		row := make(engine.Row, len(columns))
		for i, col := range columns {
			row[col] = fields[i]
		}
		table = append(table, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, NewUnreadableFile(path, err)
	}

	slog.Info("table loaded",
		slog.String("file", filepath.Base(path)),
		slog.Int("rows", len(table)),
	)
	return table, nil
}

// LoadDataset reads the six source tables from dir. The first table that
// fails aborts the load.
func LoadDataset(dir string) (pipeline.Dataset, error) {
	var (
		ds  pipeline.Dataset
		err error
	)
	if ds.Customer, err = ReadTable(filepath.Join(dir, "customer.tbl"), customerColumns); err != nil {
		return pipeline.Dataset{}, err
	}
	if ds.Orders, err = ReadTable(filepath.Join(dir, "orders.tbl"), ordersColumns); err != nil {
		return pipeline.Dataset{}, err
	}
	if ds.Lineitem, err = ReadTable(filepath.Join(dir, "lineitem.tbl"), lineitemColumns); err != nil {
		return pipeline.Dataset{}, err
	}
	if ds.Supplier, err = ReadTable(filepath.Join(dir, "supplier.tbl"), supplierColumns); err != nil {
		return pipeline.Dataset{}, err
	}
	if ds.Nation, err = ReadTable(filepath.Join(dir, "nation.tbl"), nationColumns); err != nil {
		return pipeline.Dataset{}, err
	}
	if ds.Region, err = ReadTable(filepath.Join(dir, "region.tbl"), regionColumns); err != nil {
		return pipeline.Dataset{}, err
	}
	return ds, nil
}
