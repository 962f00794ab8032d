// Package table loads activity recordings and annotation sheets into an
// in-memory Table of string cells.
//
// Two formats are supported, selected by file extension through FileLoader:
//
//   - delimited text (.csv and anything else), read with encoding/csv using
//     the delimiter, comment and whitespace settings of config.LoaderConfig
//   - Excel workbooks (.xlsx, .xlsm), read with excelize from the configured
//     sheet or the first one
//
// In both cases the first row is the header and is not counted by RowCount.
// Table.Slice returns views that share storage with the parent table, which
// is how activity streams hand out windows without copying rows.
package table
