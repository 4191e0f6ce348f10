package puente

import "strings"

// BuildBlock assembles the payload sent to the upstream translation
// capability: a "# title" line (omitted if the title is empty), a
// "### subtitle" line (omitted if empty), and the body text, in that fixed
// order, each separated by a blank line.
func BuildBlock(title, subtitle, body string) string {
	var parts []string

	if title != "" {
		parts = append(parts, "# "+title)
	}
	if subtitle != "" {
		parts = append(parts, "### "+subtitle)
	}
	if body != "" {
		parts = append(parts, body)
	}

	return strings.Join(parts, "\n\n")
}

// ParseReply parses a free-text translation reply into structured fields.
//
// The reply is scanned line by line. An initial "# " line is captured as the
// translated title and an initial "### " line as the translated subtitle;
// blank lines between the header lines and the body are tolerated. Once body
// accumulation starts it is sticky: subsequent lines are kept verbatim even
// if they happen to start with "#". If no title or subtitle was captured the
// corresponding fallback is used.
func ParseReply(reply, fallbackTitle, fallbackSubtitle string) TranslatedFields {
	var (
		title, subtitle       string
		titleSet, subtitleSet bool
		body                  []string
		pastHeaders           bool
	)

	for _, line := range strings.Split(reply, "\n") {
		switch {
		case !pastHeaders && !titleSet && strings.HasPrefix(line, "# "):
			title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			titleSet = true
		case !pastHeaders && !subtitleSet && strings.HasPrefix(line, "### "):
			subtitle = strings.TrimSpace(strings.TrimPrefix(line, "### "))
			subtitleSet = true
		case !pastHeaders && len(body) == 0 && strings.TrimSpace(line) == "":
			// Blank separator between the optional header lines and the body.
		default:
			pastHeaders = true
			body = append(body, line)
		}
	}

	if !titleSet {
		title = fallbackTitle
	}
	if !subtitleSet {
		subtitle = fallbackSubtitle
	}

	return TranslatedFields{
		Title:    title,
		Subtitle: subtitle,
		Content:  strings.TrimSpace(strings.Join(body, "\n")),
	}
}
