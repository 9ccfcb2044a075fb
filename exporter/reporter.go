package exporter

import (
	"fmt"
	"io"
	"strings"

	"fgexport/database"
	"fgexport/models"
)

const bannerWidth = 60

// Reporter prints the user-facing progress and summary of an export
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) banner() {
	r.printf("%s\n", strings.Repeat("=", bannerWidth))
}

// Connecting prints the target of the connection. The password is never shown.
func (r *Reporter) Connecting(cfg database.Config) {
	name := "PostgreSQL"
	if cfg.Type == database.TypeMySQL {
		name = "MySQL"
	}
	r.printf("Connecting to %s...\n", name)
	r.printf("Host: %s\n", cfg.Host)
	r.printf("Database: %s\n", cfg.Database)
	r.printf("User: %s\n\n", cfg.User)
}

// Connected confirms the connection is open
func (r *Reporter) Connected() {
	r.printf("Connected successfully!\n\n")
}

// Downloading names the table being fetched
func (r *Reporter) Downloading(table string) {
	r.printf("Downloading %s table...\n\n", table)
}

// Fetched prints how many records the query returned
func (r *Reporter) Fetched(n int) {
	r.printf("Fetched %d records\n\n", n)
}

// Empty warns that the table has no rows and nothing was written
func (r *Reporter) Empty() {
	r.printf("WARNING: Table is empty!\n")
}

// Success prints the summary block for a written file
func (r *Reporter) Success(res *Result) {
	r.banner()
	r.printf("CSV FILE DOWNLOADED SUCCESSFULLY!\n")
	r.banner()
	r.printf("Filename: %s\n", res.Filename)
	r.printf("Total Records: %d\n", res.Records)
	r.printf("File Size: %.2f KB\n", res.SizeKB())
	r.banner()
	r.printf("\nFile Location: %s\n\n", res.Path)
}

// Failure prints err and the static troubleshooting checklist
func (r *Reporter) Failure(err error) {
	r.printf("\nERROR: %v\n", err)
	r.printf("\nTroubleshooting:\n")
	r.printf("   1. Check if your IP is whitelisted in the database server firewall\n")
	r.printf("   2. Verify .env file has correct credentials (DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD)\n")
	r.printf("   3. Make sure table %q exists\n\n", models.FGMasterTable)
}

// Closed confirms the connection was released
func (r *Reporter) Closed() {
	r.printf("Connection closed\n\n")
}
