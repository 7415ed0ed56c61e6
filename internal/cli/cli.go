// Package cli implements empman's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"

	"github.com/imcagla7/employee-management/internal/i18n"
	"github.com/imcagla7/employee-management/internal/query"
	"github.com/imcagla7/employee-management/internal/store"
)

// DataDir returns the default data directory for empman.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/empman"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".empman"
	}
	return home + "/.local/share/empman"
}

// OpenStore opens the directory store under dir, creating it on first run.
func OpenStore(dir string) (*store.Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	return store.Open(fsys)
}

// CmdList prints the directory, optionally filtered and paged.
// Flags: --json, --search <text>, --page <n>.
func CmdList(args []string) {
	asJSON := hasFlag(args, "--json")
	search := flagValue(args, "--search")

	page := 1
	if v := flagValue(args, "--page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "empman: invalid page %q\n", v)
			os.Exit(1)
		}
		page = n
	}

	s := mustOpen()

	filtered := query.Filter(s.All(), search)
	total := query.TotalPages(len(filtered), query.DefaultPageSize)
	records := query.PageSlice(filtered, page, query.DefaultPageSize)

	if asJSON {
		printJSON(records)
		return
	}

	if len(filtered) == 0 {
		fmt.Println("no employees")
		return
	}

	for _, e := range records {
		fmt.Printf("  %-5d %-24s %-12s %-10s %s\n",
			e.ID, e.FullName(), e.DateOfEmployment, e.Department, e.Position)
	}
	fmt.Printf("  page %d / %d (%d total)\n", page, total, len(filtered))
}

// CmdShow prints a single record by id.
func CmdShow(idArg string) {
	id := mustID(idArg)
	s := mustOpen()

	e, err := s.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "empman: employee %d not found\n", id)
			os.Exit(1)
		}
		fail(err)
	}

	fmt.Printf("  id:                 %d\n", e.ID)
	fmt.Printf("  name:               %s\n", e.FullName())
	fmt.Printf("  date of employment: %s\n", e.DateOfEmployment)
	fmt.Printf("  date of birth:      %s\n", e.DateOfBirth)
	fmt.Printf("  phone:              %s\n", e.PhoneNumber)
	fmt.Printf("  email:              %s\n", e.EmailAddress)
	fmt.Printf("  department:         %s\n", e.Department)
	fmt.Printf("  position:           %s\n", e.Position)
}

// CmdRemove deletes a record by id.
func CmdRemove(idArg string) {
	id := mustID(idArg)
	s := mustOpen()

	if err := s.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "empman: employee %d not found\n", id)
			os.Exit(1)
		}
		fail(err)
	}
	fmt.Printf("deleted %d\n", id)
}

// CmdLang prints the current language, or sets it when a code is given.
func CmdLang(args []string) {
	s := mustOpen()

	if len(args) == 0 {
		fmt.Println(s.Language())
		return
	}

	code := args[0]
	if err := s.SetLanguage(code); err != nil {
		if errors.Is(err, store.ErrUnsupportedLanguage) {
			fmt.Fprintf(os.Stderr, "empman: unsupported language %q (supported: %s)\n",
				code, strings.Join(i18n.Languages(), ", "))
			os.Exit(1)
		}
		fail(err)
	}
	fmt.Println(code)
}

func mustOpen() *store.Store {
	s, err := OpenStore(DataDir())
	if err != nil {
		fail(err)
	}
	return s
}

func mustID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "empman: invalid id %q\n", arg)
		os.Exit(1)
	}
	return id
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "empman: %v\n", err)
	os.Exit(1)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "empman: encode json: %v\n", err)
		os.Exit(1)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the argument following flag, or "".
func flagValue(args []string, flag string) string {
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
