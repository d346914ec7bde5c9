package corpus

import "strings"

// headerFields maps the markdown section headers used by the source corpus
// to their metadata field names, in document order.
var headerFields = []struct {
	header string
	field  string
}{
	{"歌名", "title"},
	{"歌手", "artist"},
	{"收录专辑", "album"},
	{"发行时间", "year"},
	{"地区", "region"},
	{"类型", "type"},
	{"歌词", "lyrics"},
}

// section is one "## header" block of a markdown document.
type section struct {
	header string // trimmed header text, "" for content before the first header
	body   string // trimmed body text
}

// splitSections scans text into "## header" sections. Content before the
// first header becomes a section with an empty header. Deeper headers
// ("###" and below) stay inside the enclosing section's body.
func splitSections(text string) []section {
	var sections []section
	header := ""
	var body []string

	flush := func() {
		b := strings.TrimSpace(strings.Join(body, "\n"))
		if header != "" || b != "" {
			sections = append(sections, section{header: header, body: b})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "##") && !strings.HasPrefix(line, "###") {
			flush()
			header = strings.TrimSpace(line[2:])
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// fieldForHeader returns the metadata field name for a section header,
// or "" if the header is not part of the known vocabulary.
func fieldForHeader(header string) string {
	for _, hf := range headerFields {
		if hf.header == header {
			return hf.field
		}
	}
	return ""
}
