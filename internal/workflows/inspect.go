package workflows

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// RotorInfo describes one catalog rotor for display.
type RotorInfo struct {
	Name        string
	Kind        enigma.Kind
	Notches     string
	Cycles      string
	Derangement bool
}

// Describe lists the rotors of cfg in catalog order.
func Describe(cfg *configs.MachineConfig) []RotorInfo {
	names := cfg.Catalog.Names()
	infos := make([]RotorInfo, 0, len(names))
	for _, name := range names {
		r, _ := cfg.Catalog.Lookup(name)
		infos = append(infos, RotorInfo{
			Name:        r.Name(),
			Kind:        r.Kind(),
			Notches:     r.Notches(),
			Cycles:      r.Permutation().Cycles(),
			Derangement: r.Permutation().Derangement(),
		})
	}
	return infos
}

// FileCheck is the outcome of loading one machine description.
type FileCheck struct {
	// Path is the file as matched by the pattern.
	Path string

	// Err is the load error, nil if the description is valid.
	Err error

	// Warnings lists problems that do not stop the description loading but
	// may stop a machine from ever being assembled.
	Warnings []string
}

// CheckResult contains the outcome of a check operation.
type CheckResult struct {
	Files []FileCheck
}

// Invalid returns the number of files that failed to load.
func (r *CheckResult) Invalid() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// Check loads every machine description matching patterns and reports
// which are invalid. Patterns support ** via doublestar.
//
// Returns ErrNoFilesFound if no pattern matches a regular file.
func Check(ctx context.Context, patterns []string) (*CheckResult, error) {
	paths, err := expandPatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errs.ErrNoFilesFound
	}

	result := &CheckResult{Files: make([]FileCheck, 0, len(paths))}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		check := FileCheck{Path: path}
		cfg, err := configs.LoadMachineConfig(path)
		if err != nil {
			check.Err = err
		} else {
			check.Warnings = lint(cfg)
		}
		result.Files = append(result.Files, check)
	}
	return result, nil
}

func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() || seen[m] {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// lint reports catalogs that load but cannot fill every slot.
func lint(cfg *configs.MachineConfig) []string {
	var warnings []string
	var reflectors, fixed, moving int
	for _, info := range Describe(cfg) {
		switch info.Kind {
		case enigma.KindReflector:
			reflectors++
			if !info.Derangement {
				warnings = append(warnings, fmt.Sprintf("reflector %s maps a symbol to itself", info.Name))
			}
		case enigma.KindFixed:
			fixed++
		case enigma.KindMoving:
			moving++
		}
	}

	if reflectors == 0 {
		warnings = append(warnings, "no reflector for slot 0")
	}
	if moving < cfg.NumPawls {
		warnings = append(warnings, fmt.Sprintf("%d moving rotors for %d pawls", moving, cfg.NumPawls))
	}
	if slots := cfg.NumRotors - cfg.NumPawls - 1; fixed < slots {
		warnings = append(warnings, fmt.Sprintf("%d fixed rotors for %d fixed slots", fixed, slots))
	}
	return warnings
}
