package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/Valentin-Kaiser/dbf2sql/dbase"
	"github.com/Valentin-Kaiser/dbf2sql/script"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// debug is set once the flags are parsed.
var debug bool

func main() {
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		if debug {
			log.Print(dbase.GetErrorTrace(err))
		}
		log.Fatal(err)
	}
}

// tableFlags returns the flags shared by the conversion and the describe command.
func tableFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "memo",
			Aliases: []string{"m"},
			Usage:   "the name of the associated memo file (if necessary)",
			EnvVars: []string{"DBF2SQL_MEMO"},
		},
		&cli.BoolFlag{
			Name:    "find-memo",
			Usage:   "look for a .fpt or .dbt memo file next to the table if --memo is not given",
			EnvVars: []string{"DBF2SQL_FIND_MEMO"},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "print debug messages to stderr",
			EnvVars: []string{"DBF2SQL_DEBUG"},
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "dbf2sql",
		Usage:     "Convert the named XBase file into a SQL script",
		ArgsUsage: "filename [indexcolumn ...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "table name, derived from the filename if empty",
				EnvVars: []string{"DBF2SQL_TABLE"},
			},
			&cli.StringFlag{
				Name:    "sqlite",
				Usage:   "execute the script on this SQLite database instead of printing it",
				EnvVars: []string{"DBF2SQL_SQLITE"},
			},
			&cli.IntFlag{
				Name:    "batch-size",
				Value:   dbase.BatchTarget,
				Usage:   "approximate number of record bytes read at once",
				EnvVars: []string{"DBF2SQL_BATCH_SIZE"},
			},
		}, tableFlags()...),
		Action: convert,
		Commands: []*cli.Command{
			{
				Name:      "describe",
				Usage:     "Print the header and the columns of the table",
				ArgsUsage: "filename",
				Flags:     tableFlags(),
				Action:    describe,
			},
		},
	}
}

func setup(cCtx *cli.Context) {
	debug = cCtx.Bool("debug")
	if debug {
		dbase.Debug(true, cCtx.App.ErrWriter)
		script.Debug(true, cCtx.App.ErrWriter)
	}
}

func open(cCtx *cli.Context) (*dbase.File, error) {
	if cCtx.NArg() < 1 {
		return nil, errors.Wrapf(dbase.ErrConfiguration, "missing filename, usage: %s %s", cCtx.App.Name, cCtx.App.ArgsUsage)
	}
	return dbase.Open(&dbase.Config{
		Filename:     cCtx.Args().First(),
		MemoFilename: cCtx.String("memo"),
		FindMemo:     cCtx.Bool("find-memo"),
	})
}

func convert(cCtx *cli.Context) error {
	setup(cCtx)
	file, err := open(cCtx)
	if err != nil {
		return err
	}
	defer file.Close()

	table := cCtx.String("table")
	if len(table) == 0 {
		table = script.TableName(cCtx.Args().First())
	}

	var sink script.Sink
	if path := cCtx.String("sqlite"); len(path) > 0 {
		sink, err = script.OpenSQLite(cCtx.Context, path)
		if err != nil {
			return err
		}
	} else {
		sink = script.NewWriterSink(cCtx.App.Writer)
	}

	err = script.Convert(file, sink, &script.Config{
		TableName:   table,
		Indexes:     cCtx.Args().Tail(),
		BatchTarget: cCtx.Int("batch-size"),
	})
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	return err
}

func describe(cCtx *cli.Context) error {
	setup(cCtx)
	file, err := open(cCtx)
	if err != nil {
		return err
	}
	defer file.Close()

	writeHeader(cCtx.App.Writer, file)

	tw := tablewriter.NewWriter(cCtx.App.Writer)
	tw.Header("name", "type", "sql type", "length", "decimals", "position")
	for _, column := range file.Columns() {
		sqlType := "skipped"
		if !column.Skipped() {
			sqlType = script.ColumnType(column)
		}
		err := tw.Append([]string{
			column.Name(),
			column.Type(),
			sqlType,
			strconv.Itoa(int(column.Length)),
			strconv.Itoa(int(column.Decimals)),
			strconv.Itoa(int(column.Position)),
		})
		if err != nil {
			return errors.Wrapf(dbase.ErrResource, "adding column %s to the table failed with error: %v", column.Name(), err)
		}
	}
	if err := tw.Render(); err != nil {
		return errors.Wrapf(dbase.ErrResource, "rendering the column table failed with error: %v", err)
	}
	return nil
}

func writeHeader(w io.Writer, file *dbase.File) {
	header := file.Header()
	fmt.Fprintf(w, "File type:     0x%02x %s\n", header.FileType, header.Version())
	fmt.Fprintf(w, "Last update:   %s\n", header.Modified(0).Format("2006-01-02"))
	fmt.Fprintf(w, "Records:       %d\n", header.RecordsCount())
	fmt.Fprintf(w, "Header length: %d\n", header.FirstRow)
	fmt.Fprintf(w, "Record length: %d\n", header.RowLength)
	fmt.Fprintf(w, "Code page:     0x%02x %s\n", header.CodePage, header.CodePageName())
	if file.Memo() != nil {
		fmt.Fprintf(w, "Memo file:     %s (%d byte blocks)\n", file.MemoFilename(), file.Memo().BlockSize())
	}
}
