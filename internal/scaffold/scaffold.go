package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jorge-barreto/plancal/internal/ux"
)

const (
	ConfigFile = "plancal.yaml"
	PlanFile   = "plan.txt"
)

const configTemplate = `# Year the plan's "Mon D" dates fall in.
year: %d

# weekly: "WEEK n" blocks with a "Memory Verse:" line each.
# flat:   every line is "<date>,<verses>".
dialect: weekly

translation: ESV
# passage-url: https://www.biblegateway.com/passage/
# esv-api-url: https://api.esv.org/v3/passage/text/

# Memory verse text fetching (plancal export --enrich).
fetch-timeout: 10
fetch-concurrency: 4
`

const planTemplate = `WEEK 1
Jan 3, Genesis 1-2
Jan 4, Genesis 3-5 | Matthew 1
Jan 5, Genesis 6-8
Jan 6, Genesis 9-11
Jan 7, Genesis 12-14 | Matthew 2
Jan 8, Genesis 15-17
Jan 9, Psalm 1
Memory Verse: John 1:1

WEEK 2
Jan 10, Genesis 18-20
Jan 11, Genesis 21-23 | Matthew 3
Jan 12, Genesis 24-25
Memory Verse: Psalm 119:105
`

// Init writes an example plancal.yaml and plan.txt into targetDir. Existing files
// are never overwritten.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, ConfigFile)
	planPath := filepath.Join(targetDir, PlanFile)
	for _, p := range []string{configPath, planPath} {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists in %s", filepath.Base(p), targetDir)
		}
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", targetDir, err)
	}
	cfg := fmt.Sprintf(configTemplate, time.Now().Year())
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigFile, err)
	}
	if err := os.WriteFile(planPath, []byte(planTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", PlanFile, err)
	}

	out := ux.Out
	fmt.Fprintf(out, "\n%s%s✓ Initialized plancal project%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Fprintf(out, "  Created:\n")
	fmt.Fprintf(out, "    %s%s%s  — year, dialect and link settings\n", ux.Cyan, ConfigFile, ux.Reset)
	fmt.Fprintf(out, "    %s%s%s      — example two-week reading plan\n\n", ux.Cyan, PlanFile, ux.Reset)
	fmt.Fprintf(out, "  Next steps:\n")
	fmt.Fprintf(out, "    1. Replace %s%s%s with your own plan\n", ux.Cyan, PlanFile, ux.Reset)
	fmt.Fprintf(out, "    2. Run %splancal export -i %s -o plan.ics --dry-run%s to preview\n\n", ux.Cyan, PlanFile, ux.Reset)
	return nil
}
