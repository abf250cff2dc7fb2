package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/keshon/minigit/internal/command"

	_ "github.com/keshon/minigit/internal/command/add"
	_ "github.com/keshon/minigit/internal/command/branch"
	_ "github.com/keshon/minigit/internal/command/checkout"
	_ "github.com/keshon/minigit/internal/command/commit"
	_ "github.com/keshon/minigit/internal/command/find"
	_ "github.com/keshon/minigit/internal/command/globallog"
	_ "github.com/keshon/minigit/internal/command/help"
	_ "github.com/keshon/minigit/internal/command/initialize"
	_ "github.com/keshon/minigit/internal/command/log"
	_ "github.com/keshon/minigit/internal/command/reset"
	_ "github.com/keshon/minigit/internal/command/rm"
	_ "github.com/keshon/minigit/internal/command/rmbranch"
	_ "github.com/keshon/minigit/internal/command/status"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := render(outFile, string(tplBytes)); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}

// render executes tpl with one markdown section per registered command.
func render(w io.Writer, tpl string) error {
	t, err := template.New("readme").Parse(tpl)
	if err != nil {
		return err
	}

	var sections strings.Builder
	for _, cmd := range command.AllCommands() {
		fmt.Fprintf(&sections,
			"### %s\n```\n%s\n%s\n```\n\n",
			cmd.Name(),
			cmd.Usage(),
			cmd.Help(),
		)
	}

	data := map[string]string{
		"CommandSections": sections.String(),
	}
	return t.Execute(w, data)
}
