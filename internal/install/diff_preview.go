package install

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/vercel-installer/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func (inst *installer) writeDiffPreview(rel string, current []byte, next []byte) {
	rendered, _ := renderTruncatedUnifiedDiff(rel+" (current)", rel+" (new)", string(current), string(next), inst.diffMaxLines)
	if rendered == "" {
		return
	}
	// Preview output is best effort; a failed write must not abort the install.
	_, _ = fmt.Fprintf(inst.warnWriter, messages.InstallDiffHeaderFmt, rel)
	_, _ = fmt.Fprint(inst.warnWriter, rendered)
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.InstallDiffTruncated, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
