package main

import (
	"faa-load/cmd"

	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"
)

func main() {
	cmd.Execute()
}
