package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/veildoc/veildoc/internal/types"
)

// WriteFindingsCSV writes the findings table in the fixed column order of
// types.FindingsCSVHeader. fileHashes maps file IDs to content hashes; a
// missing entry yields an empty hash column, not an error.
func WriteFindingsCSV(w io.Writer, runID string, findings []types.Finding, fileHashes map[string]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.FindingsCSVHeader); err != nil {
		return err
	}
	for _, f := range findings {
		row := []string{
			runID,
			f.FileID,
			f.OriginalFilename,
			fileHashes[f.FileID],
			f.PageOrLocation,
			string(f.EntityType),
			strconv.Itoa(f.EntityPriority),
			f.DetectedText,
			f.ContextSnippet,
			f.DetectionSource,
			f.ModelID,
			strconv.Itoa(f.ConfidenceScore),
			strconv.Itoa(f.ConfidenceThreshold),
			strconv.FormatBool(f.UncertaintyFlag),
			string(f.RedactionAction),
			f.PseudonymValue,
			strconv.FormatBool(f.EscalationApplied),
			strconv.FormatBool(f.WhitelistMatch),
			strconv.FormatBool(f.BlacklistMatch),
			f.Language,
			f.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
