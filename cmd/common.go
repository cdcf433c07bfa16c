package cmd

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pitchplot/constants"
	"pitchplot/model"
	"pitchplot/util"
)

// chartPath resolves where a chart lands. With no explicit output path we
// generate a name under the chart dir, like the indexer names its chunks.
func chartPath(out string) string {
	if out != "" {
		return out
	}
	dir := constants.GetChartDir()
	util.EnsureDir(dir)
	return filepath.Join(dir, uuid.New().String()+".png")
}

type rootChord struct {
	root string
	def  model.ChordDefinition
}

// parseRootChords parses args like "C4:m7" or bare "G4" (major) into
// (root, definition) pairs, order preserved.
func parseRootChords(args []string) ([]rootChord, error) {
	roots := make([]string, len(args))
	names := make([]string, len(args))
	for i, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		roots[i] = parts[0]
		names[i] = "maj"
		if len(parts) == 2 {
			names[i] = parts[1]
		}
	}

	defs, err := lookupDefs(names)
	if err != nil {
		return nil, err
	}

	res := make([]rootChord, len(args))
	for i := range res {
		res[i] = rootChord{root: roots[i], def: defs[i]}
	}
	return res, nil
}
